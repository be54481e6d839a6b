package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"tuiter/internal/models"
)

// FileTweetRepository persists tweets as a single JSON array on disk with the
// same whole-document read/rewrite discipline as FileUserRepository.
type FileTweetRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileTweetRepository opens a file-backed tweet collection, seeding an
// empty collection if the file does not exist yet.
func NewFileTweetRepository(path string) (*FileTweetRepository, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize tweet collection at %s: %w", path, err)
		}
	}
	return &FileTweetRepository{path: path}, nil
}

func (r *FileTweetRepository) load() ([]models.Tweet, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tweet collection: %w", err)
	}
	var tweets []models.Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweet collection: %w", err)
	}
	return tweets, nil
}

func (r *FileTweetRepository) save(tweets []models.Tweet) error {
	data, err := json.Marshal(tweets)
	if err != nil {
		return fmt.Errorf("failed to encode tweet collection: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tweet collection: %w", err)
	}
	return nil
}

// GetAll returns every persisted tweet in storage order.
func (r *FileTweetRepository) GetAll() ([]models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID scans the collection for the tweet with the given identifier.
func (r *FileTweetRepository) GetByID(id string) (*models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tweets {
		if tweets[i].ID == id {
			return &tweets[i], nil
		}
	}
	return nil, fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}

// Create appends the tweet to the end of the collection.
func (r *FileTweetRepository) Create(tweet *models.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets, err := r.load()
	if err != nil {
		return err
	}
	tweets = append(tweets, *tweet)
	return r.save(tweets)
}

// Replace swaps the full contents of the tweet stored under id, keeping the
// stored identifier.
func (r *FileTweetRepository) Replace(id string, tweet *models.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets, err := r.load()
	if err != nil {
		return err
	}
	for i := range tweets {
		if tweets[i].ID == id {
			tweet.ID = id
			tweets[i] = *tweet
			return r.save(tweets)
		}
	}
	return fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}

// Delete removes the first tweet with the given identifier and returns it.
func (r *FileTweetRepository) Delete(id string) (*models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tweets {
		if tweets[i].ID == id {
			removed := tweets[i]
			tweets = append(tweets[:i], tweets[i+1:]...)
			if err := r.save(tweets); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("tweet with ID %s: %w", id, ErrNotFound)
}
