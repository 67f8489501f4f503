package models

import "time"

// Job represents a customer-posted home-service job.
type Job struct {
	ID             string    `bson:"id" json:"id"`
	CustomerID     string    `bson:"customerId" json:"customerId"`
	Title          string    `bson:"title" json:"title"`
	Category       string    `bson:"category" json:"category"` // e.g., "plumbing", "hvac", "electrical"
	DesiredTime    time.Time `bson:"desiredTime" json:"desiredTime"`
	EstimatedHours float64   `bson:"estimatedHours" json:"estimatedHours"` // 0 means not specified
	Latitude       float64   `bson:"latitude" json:"latitude"`
	Longitude      float64   `bson:"longitude" json:"longitude"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
