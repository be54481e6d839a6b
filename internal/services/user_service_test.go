package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"tuiter/internal/identifier"
	"tuiter/internal/models"
	"tuiter/internal/repositories"
	"tuiter/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.UserAccount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserAccount), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.UserAccount, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAccount), args.Error(1)
}

func (m *MockUserRepository) Create(account *models.UserAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockUserRepository) Replace(id string, account *models.UserAccount) error {
	args := m.Called(id, account)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) (*models.UserAccount, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAccount), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.UserAccount")).Return(nil).Once()

	account := &models.UserAccount{
		User: models.User{
			Email:    "maria@example.com",
			Nombre:   "Maria",
			Apellido: "Gomez",
		},
		Contrasena: "secreto123",
	}
	user, err := service.Register(account)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// a fresh 32-char identifier is assigned at creation
	assert.Len(t, user.ID, identifier.Length)
	assert.Equal(t, account.ID, user.ID)

	// the stored password is a hash of the raw one
	assert.NotEqual(t, "secreto123", account.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Contrasena), []byte("secreto123")))
}

func TestUserService_Register_DistinctIdentifiers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.UserAccount")).Return(nil).Twice()

	first := &models.UserAccount{User: models.User{Email: "a@example.com", Nombre: "A", Apellido: "A"}, Contrasena: "password1"}
	second := &models.UserAccount{User: models.User{Email: "b@example.com", Nombre: "B", Apellido: "B"}, Contrasena: "password2"}

	u1, err := service.Register(first)
	assert.NoError(t, err)
	u2, err := service.Register(second)
	assert.NoError(t, err)

	assert.NotEqual(t, u1.ID, u2.ID)
}

func TestUserService_Login_FullScan(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	accounts := []models.UserAccount{
		{User: models.User{ID: "id-1", Email: "primero@example.com"}, Contrasena: hashOf(t, "clave-uno1")},
		{User: models.User{ID: "id-2", Email: "segundo@example.com"}, Contrasena: hashOf(t, "clave-dos2")},
	}

	// a user that is not first in storage order can still log in
	mockRepo.On("GetAll").Return(accounts, nil).Once()
	result, err := service.Login(models.Credentials{Email: "segundo@example.com", Contrasena: "clave-dos2"})
	assert.NoError(t, err)
	assert.Equal(t, services.LoginOK, result.Mensaje)
	assert.Equal(t, "id-2", result.ID)

	// wrong password
	mockRepo.On("GetAll").Return(accounts, nil).Once()
	result, err = service.Login(models.Credentials{Email: "segundo@example.com", Contrasena: "incorrecta"})
	assert.NoError(t, err)
	assert.Equal(t, services.LoginFailed, result.Mensaje)

	// unknown email looks exactly like a wrong password
	mockRepo.On("GetAll").Return(accounts, nil).Once()
	result, err = service.Login(models.Credentials{Email: "nadie@example.com", Contrasena: "clave-uno1"})
	assert.NoError(t, err)
	assert.Equal(t, services.LoginFailed, result.Mensaje)

	mockRepo.AssertExpectations(t)
}

func TestUserService_List_StripsPasswords(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	accounts := []models.UserAccount{
		{User: models.User{ID: "id-1", Email: "a@example.com", Nombre: "A", Apellido: "A"}, Contrasena: "hash"},
	}
	mockRepo.On("GetAll").Return(accounts, nil).Once()

	users, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, accounts[0].User, users[0])
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_PinsPathIdentifier(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Replace", "id-1", mock.AnythingOfType("*models.UserAccount")).Return(nil).Once()

	account := &models.UserAccount{
		User:       models.User{ID: "id-rogue", Email: "maria@example.com", Nombre: "Maria", Apellido: "Gomez"},
		Contrasena: "secreto123",
	}
	user, err := service.Update("id-1", account)
	assert.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAndDelete_PropagateNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	notFound := fmt.Errorf("user with ID missing: %w", repositories.ErrNotFound)

	mockRepo.On("GetByID", "missing").Return(nil, notFound).Once()
	_, err := service.Get("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.On("Delete", "missing").Return(nil, notFound).Once()
	_, err = service.Delete("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
