package domain

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketLength   = 8
)

// UnitPrice is the flat per-seat price. Pricing tiers are out of scope.
var UnitPrice = decimal.NewFromInt(150)

// Booking is the ephemeral result of a successful reservation. It is not persisted;
// the only durable fact is the seat occupancy it committed.
type Booking struct {
	TicketID      string
	ScreeningID   string
	Seats         []string
	CustomerName  string
	CustomerPhone string
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// NewTicketID generates an 8-character upper-case alphanumeric ticket identifier.
// Uniqueness is entropy-based only; there is no ticket registry to check against.
func NewTicketID() (string, error) {
	id := make([]byte, ticketLength)

	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(ticketAlphabet))))
		if err != nil {
			return "", err
		}
		id[i] = ticketAlphabet[n.Int64()]
	}

	return string(id), nil
}

// TotalFor computes the booking total for a number of seats at the flat unit price.
func TotalFor(seatCount int) decimal.Decimal {
	return UnitPrice.Mul(decimal.NewFromInt(int64(seatCount)))
}
