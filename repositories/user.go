package repositories

import (
	"github.com/KubeerVignesh/angular-21/database"
	"github.com/KubeerVignesh/angular-21/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail retrieves a user by email. Callers are expected to
// normalize the email before lookup.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// Create inserts a new user into the database. The unique index on
// email is the arbiter for concurrent signups with the same address.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// UpdateFields applies a partial update to a user record and returns the
// fresh record. A nil value in the map clears the corresponding column.
func (r *UserRepository) UpdateFields(id string, fields map[string]interface{}) (models.User, error) {
	if err := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.User{}, err
	}
	return r.FindByID(id)
}

// Count returns the number of users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Count(&count)
	return count, result.Error
}
