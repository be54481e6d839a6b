package models

// Person is the recipient of an order.
type Person struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

// OrderProduct names the product being ordered.
type OrderProduct struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// Address is the shipping address of an order.
type Address struct {
	Street  string `json:"street" validate:"required,min=2,max=50"`
	City    string `json:"city" validate:"required,min=2,max=50"`
	Country string `json:"country" validate:"required,min=2,max=50"`
}

// PaymentMethod carries the raw card details of an order.
type PaymentMethod struct {
	CardNumber      string `json:"card_number" validate:"required,card_number"`
	ExpirationMonth int    `json:"expiration_month" validate:"required,gte=1,lte=12"`
	ExpirationYear  int    `json:"expiration_year" validate:"required"`
}

// Order is the /order request body. Orders are ephemeral: they are validated,
// summarized and returned, never persisted.
type Order struct {
	Person        Person        `json:"person"`
	Product       OrderProduct  `json:"product"`
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// CardSummary is the outbound view of a payment card. The full number is
// replaced by derived facts.
type CardSummary struct {
	Brand   string `json:"brand"`
	Last4   string `json:"last4"`
	Mask    string `json:"mask"`
	Expired bool   `json:"expired"`
}

// OrderReceipt is the /order response body.
type OrderReceipt struct {
	Person        Person       `json:"person"`
	Product       OrderProduct `json:"product"`
	Address       Address      `json:"address"`
	PaymentMethod CardSummary  `json:"payment_method"`
}
