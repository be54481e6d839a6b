package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tuiter/internal/models"
	"tuiter/internal/services"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	service := services.NewOrderService(nil) // no broker

	order := models.Order{
		Person:  models.Person{Name: "John Doe", Email: "john@example.com", Phone: "+541112345678"},
		Product: models.OrderProduct{Name: "Laptop"},
		Address: models.Address{Street: "Av. Siempre Viva 742", City: "Springfield", Country: "Argentina"},
		PaymentMethod: models.PaymentMethod{
			CardNumber:      "4111111111111111",
			ExpirationMonth: 12,
			ExpirationYear:  2020,
		},
	}

	receipt, err := service.PlaceOrder(order)
	assert.NoError(t, err)
	assert.Equal(t, order.Person, receipt.Person)
	assert.Equal(t, "Visa", receipt.PaymentMethod.Brand)
	assert.Equal(t, "1111", receipt.PaymentMethod.Last4)
	assert.Equal(t, "411111******1111", receipt.PaymentMethod.Mask)
	assert.True(t, receipt.PaymentMethod.Expired)

	order.PaymentMethod.ExpirationYear = time.Now().Year() + 5
	receipt, err = service.PlaceOrder(order)
	assert.NoError(t, err)
	assert.False(t, receipt.PaymentMethod.Expired)
}

func TestOrderService_PlaceOrder_RejectsBadCard(t *testing.T) {
	service := services.NewOrderService(nil)

	order := models.Order{
		PaymentMethod: models.PaymentMethod{CardNumber: "not-a-card", ExpirationMonth: 1, ExpirationYear: 2030},
	}
	_, err := service.PlaceOrder(order)
	assert.Error(t, err)
}
