package models

import "time"

// Contractor represents a service contractor available for dispatch.
// Working hours are stored as minutes from midnight, time-of-day only.
type Contractor struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email,omitempty"`
	PhoneNumber       string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Active            bool      `bson:"active" json:"active"`
	WorkingHoursStart int       `bson:"workingHoursStart" json:"workingHoursStart"`
	WorkingHoursEnd   int       `bson:"workingHoursEnd" json:"workingHoursEnd"`
	Latitude          float64   `bson:"latitude" json:"latitude"`
	Longitude         float64   `bson:"longitude" json:"longitude"`
	Rating            *float64  `bson:"rating,omitempty" json:"rating,omitempty"` // nil means no reviews yet
	ReviewCount       int       `bson:"reviewCount" json:"reviewCount"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
