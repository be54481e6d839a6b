package repositories

import "tuiter/internal/models"

// TweetRepository defines the interface for tweet data access. It carries the
// same contract as UserRepository: storage order is preserved, lookups are by
// identifier, and Replace keeps the record under the given id.
type TweetRepository interface {
	GetAll() ([]models.Tweet, error)
	GetByID(id string) (*models.Tweet, error)
	Create(tweet *models.Tweet) error
	Replace(id string, tweet *models.Tweet) error
	Delete(id string) (*models.Tweet, error)
}
