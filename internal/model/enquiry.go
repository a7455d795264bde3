package model

import "time"

// Enquiry is a submission from the public contact/enquiry form.
type Enquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Course    string    `json:"course"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
