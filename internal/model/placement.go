package model

import "time"

// Placement is a student placement record shown on the public placements page.
// Inactive records stay in the database but are hidden from the public view.
type Placement struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	Course      string    `json:"course"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
