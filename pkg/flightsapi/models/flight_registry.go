package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlightRegistry represents a single yearly/monthly passenger record for a route
type FlightRegistry struct {
	ID              string `gorm:"primarykey" json:"id"`
	Year            int    `gorm:"index" json:"year"`
	Month           int    `gorm:"index" json:"month"`
	Origin          string `gorm:"index" json:"origin"`
	Destination     string `gorm:"index" json:"destination"`
	OriginType      string `json:"originType"`
	Passengers      int    `json:"passengers"`
	AnnualVariation string `json:"annualVariation"`
}

// BeforeCreate assigns a store-generated ID when none is provided
func (f *FlightRegistry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
