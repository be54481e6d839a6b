package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tuiter/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all user accounts from the database.
func (r *GORMUserRepository) GetAll() ([]models.UserAccount, error) {
	var accounts []models.UserAccount
	if err := r.db.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return accounts, nil
}

// GetByID retrieves a single account by its identifier.
func (r *GORMUserRepository) GetByID(id string) (*models.UserAccount, error) {
	var account models.UserAccount
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &account, nil
}

// Create inserts a new account. The identifier must already be assigned.
func (r *GORMUserRepository) Create(account *models.UserAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Replace updates the full contents of the account stored under id.
func (r *GORMUserRepository) Replace(id string, account *models.UserAccount) error {
	account.ID = id
	res := r.db.Model(&models.UserAccount{}).Where("id = ?", id).Select("*").Updates(account)
	if res.Error != nil {
		return fmt.Errorf("failed to replace user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the account with the given identifier and returns it.
func (r *GORMUserRepository) Delete(id string) (*models.UserAccount, error) {
	account, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.UserAccount{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return account, nil
}
