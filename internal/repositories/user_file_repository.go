package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"tuiter/internal/models"
)

// FileUserRepository persists user accounts as a single JSON array on disk.
// Every mutation loads the whole document, edits it in memory and rewrites
// the file. One mutex covers the full read-modify-write cycle so concurrent
// writers cannot lose each other's updates.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileUserRepository opens a file-backed user collection, seeding an empty
// collection if the file does not exist yet.
func NewFileUserRepository(path string) (*FileUserRepository, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize user collection at %s: %w", path, err)
		}
	}
	return &FileUserRepository{path: path}, nil
}

func (r *FileUserRepository) load() ([]models.UserAccount, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user collection: %w", err)
	}
	var accounts []models.UserAccount
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode user collection: %w", err)
	}
	return accounts, nil
}

func (r *FileUserRepository) save(accounts []models.UserAccount) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode user collection: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user collection: %w", err)
	}
	return nil
}

// GetAll returns every persisted account in storage order.
func (r *FileUserRepository) GetAll() ([]models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID scans the collection for the account with the given identifier.
func (r *FileUserRepository) GetByID(id string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}

// Create appends the account to the end of the collection.
func (r *FileUserRepository) Create(account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	accounts = append(accounts, *account)
	return r.save(accounts)
}

// Replace swaps the full contents of the account stored under id. The stored
// identifier never changes: whatever id the new record carries is overwritten.
func (r *FileUserRepository) Replace(id string, account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			account.ID = id
			accounts[i] = *account
			return r.save(accounts)
		}
	}
	return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}

// Delete removes the first account with the given identifier and returns it.
func (r *FileUserRepository) Delete(id string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			removed := accounts[i]
			accounts = append(accounts[:i], accounts[i+1:]...)
			if err := r.save(accounts); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
}
