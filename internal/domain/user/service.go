package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/google/uuid"

	"github.com/medwise/medwise/internal/platform/auth"
)

// ErrInvalidCredentials is returned for an unknown email or wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("Invalid credentials.")

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	users Repository
}

func NewService(users Repository) *Service {
	return &Service{users: users}
}

// validPassword checks the signup password policy: at least 8 characters
// including an uppercase letter, a lowercase letter, and a digit.
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// Signup validates the request, hashes the password, and creates the user.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*User, error) {
	if !emailRe.MatchString(req.Email) {
		return nil, fmt.Errorf("Invalid email format.")
	}
	if !validPassword(req.Password) {
		return nil, fmt.Errorf("Password must be at least 8 characters, include uppercase, lowercase, and a number.")
	}
	if req.Name == "" || req.Age <= 0 || req.Gender == "" || req.BloodType == "" ||
		req.EmergencyContactName == "" || req.EmergencyContactRelationship == "" ||
		req.EmergencyContactPhone == "" {
		return nil, fmt.Errorf("All fields are required.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:                        req.Email,
		PasswordHash:                 hash,
		Name:                         req.Name,
		Age:                          req.Age,
		Gender:                       req.Gender,
		BloodType:                    &req.BloodType,
		Weight:                       req.Weight,
		Height:                       req.Height,
		Allergies:                    req.Allergies,
		EmergencyContactName:         &req.EmergencyContactName,
		EmergencyContactRelationship: &req.EmergencyContactRelationship,
		EmergencyContactPhone:        &req.EmergencyContactPhone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) Promote(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.Promote(ctx, id)
}

func (s *Service) UpdateProfilePhoto(ctx context.Context, id uuid.UUID, url string) (*User, error) {
	if url == "" {
		return nil, fmt.Errorf("Image URL is required.")
	}
	return s.users.UpdateProfilePhoto(ctx, id, url)
}
