package response

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Model is the closed set of response shapes the API can return. Exactly one
// variant comes back per call; callers check for the Error variant first.
type Model interface {
	model()
}

// Paged is the uniform envelope for list results
type Paged struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	Data       any    `json:"data"`
	PrevPage   string `json:"prevPage"`
	NextPage   string `json:"nextPage"`
}

// Error carries a failed request back to the caller, with the HTTP status
// code the transport layer must use.
type Error struct {
	ErrMessage string `json:"errMessage"`
	Code       int    `json:"code"`
	Detail     string `json:"detail"`
	TimeStamp  string `json:"timeStamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
}

// UserAccount wraps a user record with an outcome message
type UserAccount struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Entity is a bare single-item result (flight by id, api key by id)
type Entity struct {
	Value any
}

func (Paged) model()       {}
func (*Error) model()      {}
func (UserAccount) model() {}
func (Entity) model()      {}

// RequestInfo identifies the inbound request inside error variants
type RequestInfo struct {
	Path   string
	Method string
}

// Describe captures the path and method of the current request
func Describe(c *gin.Context) RequestInfo {
	return RequestInfo{
		Path:   c.Request.URL.Path,
		Method: c.Request.Method,
	}
}

// NewError builds the error variant, stamped with the current time
func NewError(message string, code int, detail string, req RequestInfo) *Error {
	return &Error{
		ErrMessage: message,
		Code:       code,
		Detail:     detail,
		TimeStamp:  time.Now().Format(time.RFC3339),
		Path:       req.Path,
		Method:     req.Method,
	}
}

// Write serializes a response variant, mapping the Error variant's embedded
// code to the transport status and everything else to success.
func Write(c *gin.Context, m Model, success int) {
	switch v := m.(type) {
	case *Error:
		c.JSON(v.Code, v)
	case Entity:
		c.JSON(success, v.Value)
	default:
		c.JSON(success, v)
	}
}

// TotalPages computes the page count for a 1-based pager
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageLinks builds relative prev/next links against an endpoint path
// template. Links are empty at the respective boundary.
func PageLinks(base string, page, totalPages, pageSize int) (prev, next string) {
	if page > 1 {
		prev = fmt.Sprintf("%s?page=%d&pageSize=%d", base, page-1, pageSize)
	}
	if page < totalPages {
		next = fmt.Sprintf("%s?page=%d&pageSize=%d", base, page+1, pageSize)
	}
	return prev, next
}

// SingleItem wraps one record in a degenerate one-element envelope
func SingleItem(item any) Paged {
	return Paged{
		Total:      1,
		Page:       1,
		PageSize:   1,
		TotalPages: 1,
		Data:       []any{item},
	}
}
