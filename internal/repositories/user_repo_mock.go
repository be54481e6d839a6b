package repositories

import (
	"fmt"
	"sync"

	"tuiter/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository backed
// by a slice so that storage order is preserved. It serves tests and the
// "memory" storage driver.
type MockUserRepository struct {
	accounts []models.UserAccount
	mu       sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// GetAll returns all accounts in insertion order.
func (r *MockUserRepository) GetAll() ([]models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.UserAccount, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// GetByID returns the account with the given identifier.
func (r *MockUserRepository) GetByID(id string) (*models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}

// Create appends a new account.
func (r *MockUserRepository) Create(account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = append(r.accounts, *account)
	return nil
}

// Replace swaps the contents of the account stored under id.
func (r *MockUserRepository) Replace(id string, account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account.ID = id
			r.accounts[i] = *account
			return nil
		}
	}
	return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}

// Delete removes the account with the given identifier and returns it.
func (r *MockUserRepository) Delete(id string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			removed := r.accounts[i]
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}
