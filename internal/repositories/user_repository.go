package repositories

import "tuiter/internal/models"

// UserRepository defines the interface for user account data access.
// Create assumes the identifier is already assigned and does not check it for
// collisions. Replace always stores the record under the given id, regardless
// of the identifier carried in the record itself.
type UserRepository interface {
	GetAll() ([]models.UserAccount, error)
	GetByID(id string) (*models.UserAccount, error)
	Create(account *models.UserAccount) error
	Replace(id string, account *models.UserAccount) error
	Delete(id string) (*models.UserAccount, error)
}
