package dto

import (
	"time"

	"github.com/KubeerVignesh/angular-21/models"
	"github.com/KubeerVignesh/angular-21/utils"
)

// UserResponse is the client-facing projection of a user record.
// The password hash is structurally absent and the image, if present,
// is rendered as a data URI.
type UserResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	FirstName     string      `json:"firstName,omitempty"`
	LastName      string      `json:"lastName,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	Address       string      `json:"address,omitempty"`
	Gender        string      `json:"gender,omitempty"`
	Dob           string      `json:"dob,omitempty"`
	CountryCode   string      `json:"countryCode,omitempty"`
	StreetAddress string      `json:"streetAddress,omitempty"`
	City          string      `json:"city,omitempty"`
	State         string      `json:"state,omitempty"`
	PinCode       string      `json:"pinCode,omitempty"`
	Image         string      `json:"image,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// NewUserResponse builds the response projection for a user record
func NewUserResponse(user models.User) UserResponse {
	resp := UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Address:       user.Address,
		Gender:        user.Gender,
		Dob:           user.Dob,
		CountryCode:   user.CountryCode,
		StreetAddress: user.StreetAddress,
		City:          user.City,
		State:         user.State,
		PinCode:       user.PinCode,
		CreatedAt:     user.CreatedAt,
	}

	if len(user.Image) > 0 {
		resp.Image = utils.EncodeDataURI(user.ImageType, user.Image)
	}

	return resp
}
