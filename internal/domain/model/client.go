package model

import "time"

// Client is a customer the projects are delivered for.
type Client struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateClientRequest carries the fields accepted on client creation.
type CreateClientRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}
