// Package payment parses payment-card numbers and derives the facts an order
// receipt exposes: brand, last four digits, masked form and expiry.
package payment

import (
	"fmt"
	"strings"
	"time"
)

// Brand identifies the card network a number belongs to.
type Brand string

const (
	BrandVisa       Brand = "Visa"
	BrandMastercard Brand = "Mastercard"
	BrandAmex       Brand = "American Express"
	BrandOther      Brand = "other"
)

// Card is a validated payment-card number.
type Card struct {
	Number string
	Brand  Brand
}

// Parse validates a card number: digits only, overall length between 12 and
// 19, a passing Luhn checksum, and a length allowed by the recognized brand.
func Parse(number string) (Card, error) {
	for _, r := range number {
		if r < '0' || r > '9' {
			return Card{}, fmt.Errorf("card number must contain only digits")
		}
	}
	if len(number) < 12 || len(number) > 19 {
		return Card{}, fmt.Errorf("card number must be between 12 and 19 digits, got %d", len(number))
	}
	if !luhnValid(number) {
		return Card{}, fmt.Errorf("card number failed checksum")
	}

	brand := brandOf(number)
	if lengths, ok := brandLengths[brand]; ok {
		valid := false
		for _, l := range lengths {
			if len(number) == l {
				valid = true
				break
			}
		}
		if !valid {
			return Card{}, fmt.Errorf("invalid length %d for %s card", len(number), brand)
		}
	}

	return Card{Number: number, Brand: brand}, nil
}

// brandLengths lists the lengths each recognized network issues. Unrecognized
// brands accept any length that passed the overall bounds.
var brandLengths = map[Brand][]int{
	BrandVisa:       {13, 16, 19},
	BrandMastercard: {16},
	BrandAmex:       {15},
}

func brandOf(number string) Brand {
	switch {
	case strings.HasPrefix(number, "4"):
		return BrandVisa
	case len(number) >= 2 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return BrandMastercard
	case strings.HasPrefix(number, "34") || strings.HasPrefix(number, "37"):
		return BrandAmex
	default:
		return BrandOther
	}
}

func luhnValid(number string) bool {
	var sum int
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Last4 returns the last four digits of the card number.
func (c Card) Last4() string {
	return c.Number[len(c.Number)-4:]
}

// Masked returns the number with everything between the first six and last
// four digits starred out.
func (c Card) Masked() string {
	return c.Number[:6] + strings.Repeat("*", len(c.Number)-10) + c.Last4()
}

// Expired reports whether now is past the first day of the card's expiration
// month and year.
func Expired(month, year int, now time.Time) bool {
	expiration := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return now.After(expiration)
}
