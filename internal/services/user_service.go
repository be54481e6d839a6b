package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tuiter/internal/identifier"
	"tuiter/internal/models"
	"tuiter/internal/repositories"
)

// Login outcome messages.
const (
	LoginOK     = "Ingreso correcto"
	LoginFailed = "Ingreso incorrecto"
)

// UserService handles registration, login and account maintenance.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Register assigns a fresh identifier, hashes the password and persists the
// account. The returned user carries no password.
func (s *UserService) Register(account *models.UserAccount) (*models.User, error) {
	account.ID = identifier.New()

	hashed, err := bcrypt.GenerateFromPassword([]byte(account.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.Contrasena = string(hashed)

	if err := s.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := account.User
	return &user, nil
}

// Login scans the whole collection for an account matching the given email
// and password. Unknown email and wrong password produce the same answer so
// the response does not reveal which part was wrong.
func (s *UserService) Login(creds models.Credentials) (*models.LoginResult, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users for login: %w", err)
	}

	result := &models.LoginResult{
		ID:      creds.ID,
		Email:   creds.Email,
		Mensaje: LoginFailed,
	}
	for _, account := range accounts {
		if account.Email != creds.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(account.Contrasena), []byte(creds.Contrasena)) == nil {
			result.ID = account.ID
			result.Mensaje = LoginOK
			break
		}
	}
	return result, nil
}

// List returns the public view of every registered user.
func (s *UserService) List() ([]models.User, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(accounts))
	for _, account := range accounts {
		users = append(users, account.User)
	}
	return users, nil
}

// Get returns the public view of a single user.
func (s *UserService) Get(id string) (*models.User, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user := account.User
	return &user, nil
}

// Update replaces the full contents of the account stored under id. The path
// identifier wins over whatever id the body carries, and the new password is
// hashed before it is stored.
func (s *UserService) Update(id string, account *models.UserAccount) (*models.User, error) {
	account.ID = id

	hashed, err := bcrypt.GenerateFromPassword([]byte(account.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.Contrasena = string(hashed)

	if err := s.repo.Replace(id, account); err != nil {
		return nil, err
	}

	user := account.User
	return &user, nil
}

// Delete removes the account and returns its public view.
func (s *UserService) Delete(id string) (*models.User, error) {
	account, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	user := account.User
	return &user, nil
}
