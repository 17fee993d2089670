package model

import "time"

// Introduction is a recipient's request to be issued a certificate.
type Introduction struct {
	ID            string    `json:"id"`
	RecipientKey  string    `json:"bitcoinAddress" form:"bitcoinAddress" validate:"required,alphanum,min=26,max=64"`
	Email         string    `json:"email" form:"email" validate:"required,email,max=254"`
	FirstName     string    `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName      string    `json:"lastName" form:"lastName" validate:"required,max=100"`
	StreetAddress string    `json:"streetAddress,omitempty" form:"streetAddress" validate:"max=200"`
	City          string    `json:"city,omitempty" form:"city" validate:"max=100"`
	State         string    `json:"state,omitempty" form:"state" validate:"max=100"`
	ZipCode       string    `json:"zipcode,omitempty" form:"zipcode" validate:"max=20"`
	Country       string    `json:"country,omitempty" form:"country" validate:"max=100"`
	Comments      string    `json:"comments,omitempty" form:"comments" validate:"max=2000"`
	CreatedAt     time.Time `json:"created_at"`
}
