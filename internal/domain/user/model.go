package user

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the app_user table. PasswordHash is never serialized.
type User struct {
	ID                           uuid.UUID `db:"id" json:"id"`
	Email                        string    `db:"email" json:"email"`
	PasswordHash                 string    `db:"password_hash" json:"-"`
	Name                         string    `db:"name" json:"name"`
	Age                          int       `db:"age" json:"age"`
	Gender                       string    `db:"gender" json:"gender"`
	BloodType                    *string   `db:"blood_type" json:"blood_type,omitempty"`
	Weight                       *float64  `db:"weight" json:"weight,omitempty"`
	Height                       *float64  `db:"height" json:"height,omitempty"`
	Allergies                    []string  `db:"allergies" json:"allergies,omitempty"`
	EmergencyContactName         *string   `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship *string   `db:"emergency_contact_relationship" json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        *string   `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	IsAdmin                      bool      `db:"is_admin" json:"is_admin"`
	ProfilePhotoURL              *string   `db:"profile_photo_url" json:"profile_photo_url,omitempty"`
	CreatedAt                    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                    time.Time `db:"updated_at" json:"updated_at"`
}

// SignupRequest is the payload for POST /users.
type SignupRequest struct {
	Email                        string  `json:"email"`
	Password                     string  `json:"password"`
	Name                         string  `json:"name"`
	Age                          int     `json:"age"`
	Gender                       string  `json:"gender"`
	BloodType                    string  `json:"blood_type"`
	Weight                       *float64 `json:"weight,omitempty"`
	Height                       *float64 `json:"height,omitempty"`
	Allergies                    []string `json:"allergies,omitempty"`
	EmergencyContactName         string  `json:"emergency_contact_name"`
	EmergencyContactRelationship string  `json:"emergency_contact_relationship"`
	EmergencyContactPhone        string  `json:"emergency_contact_phone"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
