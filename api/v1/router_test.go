package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KubeerVignesh/angular-21/database"
	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/KubeerVignesh/angular-21/models"
	"github.com/KubeerVignesh/angular-21/repositories"
	"github.com/KubeerVignesh/angular-21/services"
	"github.com/KubeerVignesh/angular-21/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	database.DB = db
}

// setupRouter wires the full route tree against a fresh in-memory store.
// The rate limits are raised so ordinary endpoint tests never trip them.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "100000")
	t.Setenv("AUTH_RATE_LIMIT_MAX_REQUESTS", "100000")

	tokens := services.NewTokenService(testSecret, time.Hour)
	auth := services.NewAuthService(repositories.NewUserRepository(), tokens)
	products := services.NewProductService(repositories.NewProductRepository())

	router := gin.New()
	RegisterRoutes(router, auth, tokens, products)
	return router
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		User     dto.UserResponse `json:"user"`
		Token    string           `json:"token"`
		Product  models.Product   `json:"product"`
		Products []models.Product `json:"products"`
	} `json:"data"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// signupUser registers a user through the API and returns its response payload
func signupUser(t *testing.T, router *gin.Engine, name, email, password string) apiResponse {
	t.Helper()
	rec := performRequest(router, "POST", "/api/auth/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())
	return decodeResponse(t, rec)
}

// createAdmin inserts an admin account directly into the store and returns
// a login token for it
func createAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	hashed, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	_, err = repositories.NewUserRepository().Create(models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	rec := performRequest(router, "POST", "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())
	return decodeResponse(t, rec).Data.Token
}
