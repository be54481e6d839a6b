package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tuiter/internal/identifier"
	"tuiter/internal/models"
	"tuiter/internal/repositories"
	"tuiter/pkg/rabbitmq"
)

// TweetService handles the tweet timeline.
type TweetService struct {
	repo     repositories.TweetRepository
	mqClient *rabbitmq.Client
}

// NewTweetService creates a new TweetService. mqClient may be nil, in which
// case no events are published.
func NewTweetService(repo repositories.TweetRepository, mqClient *rabbitmq.Client) *TweetService {
	return &TweetService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// List returns every tweet in storage order.
func (s *TweetService) List() ([]models.Tweet, error) {
	return s.repo.GetAll()
}

// Get returns a single tweet by its identifier.
func (s *TweetService) Get(id string) (*models.Tweet, error) {
	return s.repo.GetByID(id)
}

// Post stores a new tweet with a fresh identifier and publication time, then
// announces it on the broker when one is configured. The edit timestamp
// starts out unset.
func (s *TweetService) Post(tweet *models.Tweet) (*models.Tweet, error) {
	tweet.ID = identifier.New()
	tweet.TimestampPub = time.Now()
	tweet.TimestampAct = nil

	if err := s.repo.Create(tweet); err != nil {
		return nil, fmt.Errorf("failed to post tweet: %w", err)
	}

	s.publishEvent("tweet.posted", tweet)
	return tweet, nil
}

// Update replaces the contents of the tweet stored under id. The publication
// timestamp is carried over from the stored record and the edit timestamp is
// set to now.
func (s *TweetService) Update(id string, tweet *models.Tweet) (*models.Tweet, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tweet.ID = id
	tweet.TimestampPub = existing.TimestampPub
	now := time.Now()
	tweet.TimestampAct = &now

	if err := s.repo.Replace(id, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Delete removes a tweet and returns it.
func (s *TweetService) Delete(id string) (*models.Tweet, error) {
	return s.repo.Delete(id)
}

func (s *TweetService) publishEvent(event string, tweet *models.Tweet) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":      event,
		"id_tweet":   tweet.ID,
		"id_usuario": tweet.Autor.ID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for tweet %s: %v", event, tweet.ID, err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.TweetQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event for tweet %s: %v", event, tweet.ID, err)
	}
}
