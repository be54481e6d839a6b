package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tuiter/internal/payment"
)

func TestParse_RecognizesBrands(t *testing.T) {
	tests := []struct {
		number string
		brand  payment.Brand
	}{
		{"4111111111111111", payment.BrandVisa},
		{"5555555555554444", payment.BrandMastercard},
		{"378282246310005", payment.BrandAmex},
		{"6011111111111117", payment.BrandOther},
	}
	for _, tt := range tests {
		card, err := payment.Parse(tt.number)
		assert.NoError(t, err, tt.number)
		assert.Equal(t, tt.brand, card.Brand, tt.number)
	}
}

func TestParse_RejectsBadNumbers(t *testing.T) {
	// non-digits
	_, err := payment.Parse("4111-1111-1111-1111")
	assert.Error(t, err)

	// too short
	_, err = payment.Parse("41111111")
	assert.Error(t, err)

	// failing Luhn checksum
	_, err = payment.Parse("4111111111111112")
	assert.Error(t, err)

	// Luhn-valid 15-digit number with a Visa prefix: wrong length for the brand
	_, err = payment.Parse("411111111111116")
	assert.Error(t, err)
}

func TestCard_Last4AndMask(t *testing.T) {
	card, err := payment.Parse("4111111111111111")
	assert.NoError(t, err)
	assert.Equal(t, "1111", card.Last4())
	assert.Equal(t, "411111******1111", card.Masked())

	amex, err := payment.Parse("378282246310005")
	assert.NoError(t, err)
	assert.Equal(t, "0005", amex.Last4())
	assert.Equal(t, "378282*****0005", amex.Masked())
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, payment.Expired(12, 2020, now))
	assert.False(t, payment.Expired(12, 2030, now))

	// the month itself counts as expired once the 1st has passed
	assert.True(t, payment.Expired(7, 2026, now))
	// exactly the 1st is not yet past
	assert.False(t, payment.Expired(7, 2026, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
}
