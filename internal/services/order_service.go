package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tuiter/internal/models"
	"tuiter/internal/payment"
	"tuiter/pkg/rabbitmq"
)

// OrderService turns a validated order form into a receipt. Orders are not
// persisted; the only side effect is a broker event.
type OrderService struct {
	mqClient *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case no events are published.
func NewOrderService(mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		mqClient: mqClient,
	}
}

// PlaceOrder derives the card facts for the receipt: brand, last four
// digits, masked number and the expiry predicate evaluated against today.
func (s *OrderService) PlaceOrder(order models.Order) (*models.OrderReceipt, error) {
	card, err := payment.Parse(order.PaymentMethod.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid payment card: %w", err)
	}

	receipt := &models.OrderReceipt{
		Person:  order.Person,
		Product: order.Product,
		Address: order.Address,
		PaymentMethod: models.CardSummary{
			Brand:   string(card.Brand),
			Last4:   card.Last4(),
			Mask:    card.Masked(),
			Expired: payment.Expired(order.PaymentMethod.ExpirationMonth, order.PaymentMethod.ExpirationYear, time.Now()),
		},
	}

	s.publishEvent(receipt)
	return receipt, nil
}

func (s *OrderService) publishEvent(receipt *models.OrderReceipt) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":   "order.placed",
		"product": receipt.Product.Name,
		"email":   receipt.Person.Email,
		"brand":   receipt.PaymentMethod.Brand,
		"last4":   receipt.PaymentMethod.Last4,
	})
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.OrderQueue, body); err != nil {
		log.Printf("Warning: failed to publish order.placed event: %v", err)
	}
}
