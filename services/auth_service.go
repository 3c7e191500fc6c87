package services

import (
	"errors"
	"strings"

	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/KubeerVignesh/angular-21/models"
	"github.com/KubeerVignesh/angular-21/repositories"
	"github.com/KubeerVignesh/angular-21/utils"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken means signup was attempted with an already-registered email.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrMissingCredentials means login was attempted without an email or password.
	ErrMissingCredentials = errors.New("please provide email and password")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidImage means a profile image was not a decodable data URI.
	ErrInvalidImage = errors.New("image must be a base64 data URI")
)

// AuthService orchestrates signup, login and profile maintenance
type AuthService struct {
	users  *repositories.UserRepository
	tokens *TokenService
}

// NewAuthService creates an auth service backed by the given store and token issuer
func NewAuthService(users *repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// normalizeEmail lowercases and trims an email so lookups and the unique
// index agree on a canonical form
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user and returns the created record with a fresh token
func (s *AuthService) Signup(req dto.SignupRequest) (models.User, string, error) {
	email := normalizeEmail(req.Email)

	// Reject a duplicate email before spending time on hashing
	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, "", err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleUser
	}

	user, err := s.users.Create(models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		// Two concurrent signups with the same email race on the unique
		// index; the store rejects the second write
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token
func (s *AuthService) Login(req dto.LoginRequest) (models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return models.User{}, "", ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	// A hash comparison failure of any kind denies the login
	if !utils.CheckPassword(req.Password, user.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (models.User, error) {
	return s.users.FindByID(id)
}

// UpdateDetails applies a partial profile update to the user identified by
// userID. The password column is never touched here, so the stored hash
// survives profile updates unchanged.
func (s *AuthService) UpdateDetails(userID string, req dto.UpdateDetailsRequest) (models.User, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Dob != nil {
		fields["dob"] = *req.Dob
	}
	if req.CountryCode != nil {
		fields["country_code"] = *req.CountryCode
	}
	if req.StreetAddress != nil {
		fields["street_address"] = *req.StreetAddress
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.PinCode != nil {
		fields["pin_code"] = *req.PinCode
	}

	if req.Image != nil {
		if *req.Image == "" {
			fields["image"] = nil
			fields["image_type"] = nil
		} else {
			contentType, data, err := utils.ParseDataURI(*req.Image)
			if err != nil {
				return models.User{}, ErrInvalidImage
			}
			fields["image"] = data
			fields["image_type"] = contentType
		}
	}

	if len(fields) == 0 {
		return s.users.FindByID(userID)
	}

	return s.users.UpdateFields(userID, fields)
}
