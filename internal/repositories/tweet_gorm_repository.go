package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tuiter/internal/models"
)

// GORMTweetRepository is a GORM implementation of TweetRepository.
type GORMTweetRepository struct {
	db *gorm.DB
}

// NewGORMTweetRepository creates a new instance of GORMTweetRepository.
func NewGORMTweetRepository(db *gorm.DB) *GORMTweetRepository {
	return &GORMTweetRepository{
		db: db,
	}
}

// GetAll retrieves all tweets from the database.
func (r *GORMTweetRepository) GetAll() ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.Find(&tweets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tweets: %w", err)
	}
	return tweets, nil
}

// GetByID retrieves a single tweet by its identifier.
func (r *GORMTweetRepository) GetByID(id string) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tweet by ID %s: %w", id, err)
	}
	return &tweet, nil
}

// Create inserts a new tweet. The identifier must already be assigned.
func (r *GORMTweetRepository) Create(tweet *models.Tweet) error {
	if err := r.db.Create(tweet).Error; err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// Replace updates the full contents of the tweet stored under id.
func (r *GORMTweetRepository) Replace(id string, tweet *models.Tweet) error {
	tweet.ID = id
	res := r.db.Model(&models.Tweet{}).Where("id = ?", id).Select("*").Updates(tweet)
	if res.Error != nil {
		return fmt.Errorf("failed to replace tweet %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the tweet with the given identifier and returns it.
func (r *GORMTweetRepository) Delete(id string) (*models.Tweet, error) {
	tweet, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Tweet{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete tweet %s: %w", id, err)
	}
	return tweet, nil
}
