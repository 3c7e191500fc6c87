package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims.
// The user id is the only identity embedded in issued tokens.
type TokenClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// SignupRequest represents registration data
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// LoginRequest represents login credentials.
// Fields are checked by the service so a missing value produces the
// documented "please provide email and password" failure, not a binding error.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateDetailsRequest is a partial profile update: nil means "leave unchanged".
// Image carries a data URI string; an empty string clears the stored image.
// Any client-supplied id is deliberately absent here — the update target is
// always the authenticated user.
type UpdateDetailsRequest struct {
	Name          *string `json:"name"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Gender        *string `json:"gender"`
	Dob           *string `json:"dob"`
	CountryCode   *string `json:"countryCode"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PinCode       *string `json:"pinCode"`
	Image         *string `json:"image"`
}
