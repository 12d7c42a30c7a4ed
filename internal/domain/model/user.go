package model

import "github.com/planboard/planboard/internal/domain/auth"

// UserSummary is the trimmed user shape returned by assignment listings.
type UserSummary struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"full_name"`
	Email       string    `json:"email"`
	Role        auth.Role `json:"role"`
}

// RegisterUserRequest carries the fields accepted on user registration.
// Registration is admin-only by policy; the role defaults to TeamMember
// server-side when omitted.
type RegisterUserRequest struct {
	DisplayName string    `json:"full_name,omitempty"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Role        auth.Role `json:"role,omitempty"`
}
