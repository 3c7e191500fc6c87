package v1

import (
	"errors"
	"net/http"

	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/KubeerVignesh/angular-21/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController exposes the signup/login/profile endpoints
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup handles user registration
func (ctl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide a valid name, email and password",
		})
		return
	}

	user, token, err := ctl.auth.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data": gin.H{
			"user":  dto.NewUserResponse(user),
			"token": token,
		},
	})
}

// Login handles user authentication
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest

	// Bind errors fall through to the service's missing-credentials check
	_ = c.ShouldBindJSON(&req)

	user, token, err := ctl.auth.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"user":  dto.NewUserResponse(user),
			"token": token,
		},
	})
}

// GetMe returns the currently authenticated user's profile
func (ctl *AuthController) GetMe(c *gin.Context) {
	user, err := ctl.auth.GetUser(c.GetString("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user": dto.NewUserResponse(user),
		},
	})
}

// UpdateDetails applies a partial profile update to the authenticated user.
// The target identity comes from the verified token only; any id in the
// request body is ignored.
func (ctl *AuthController) UpdateDetails(c *gin.Context) {
	var req dto.UpdateDetailsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	user, err := ctl.auth.UpdateDetails(c.GetString("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user": dto.NewUserResponse(user),
		},
	})
}

// respondError maps service errors onto the uniform failure envelope
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "User already exists with this email",
		})
	case errors.Is(err, services.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide email and password",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
	case errors.Is(err, services.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Image must be a base64 data URI",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Resource not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
	}
}
