package repositories

import (
	"fmt"
	"sync"

	"tuiter/internal/models"
)

// MockTweetRepository is an in-memory, insertion-ordered implementation of
// TweetRepository for tests and the "memory" storage driver.
type MockTweetRepository struct {
	tweets []models.Tweet
	mu     sync.RWMutex
}

// NewMockTweetRepository creates a new instance of MockTweetRepository.
func NewMockTweetRepository() *MockTweetRepository {
	return &MockTweetRepository{}
}

// GetAll returns all tweets in insertion order.
func (r *MockTweetRepository) GetAll() ([]models.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Tweet, len(r.tweets))
	copy(out, r.tweets)
	return out, nil
}

// GetByID returns the tweet with the given identifier.
func (r *MockTweetRepository) GetByID(id string) (*models.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tweets {
		if r.tweets[i].ID == id {
			tweet := r.tweets[i]
			return &tweet, nil
		}
	}
	return nil, fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}

// Create appends a new tweet.
func (r *MockTweetRepository) Create(tweet *models.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tweets = append(r.tweets, *tweet)
	return nil
}

// Replace swaps the contents of the tweet stored under id.
func (r *MockTweetRepository) Replace(id string, tweet *models.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tweets {
		if r.tweets[i].ID == id {
			tweet.ID = id
			r.tweets[i] = *tweet
			return nil
		}
	}
	return fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}

// Delete removes the tweet with the given identifier and returns it.
func (r *MockTweetRepository) Delete(id string) (*models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tweets {
		if r.tweets[i].ID == id {
			removed := r.tweets[i]
			r.tweets = append(r.tweets[:i], r.tweets[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}
