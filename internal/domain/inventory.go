package domain

import (
	"sort"
	"sync"
)

// SeatInventory is the set of currently booked seat identifiers for one screening.
// Reserve holds the inventory mutex across its validate-then-commit step, so two
// concurrent requests for the same seat can never both succeed.
type SeatInventory struct {
	mu        sync.Mutex
	screening Screening
	booked    map[string]struct{}
}

func NewSeatInventory(screening Screening) *SeatInventory {
	return &SeatInventory{
		screening: screening,
		booked:    make(map[string]struct{}),
	}
}

// restore seeds the booked set from a persisted document. Identifiers outside the
// screening's geometry are discarded to keep the booked set a subset of the valid
// seat space.
func (inv *SeatInventory) restore(seats []string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, seat := range seats {
		if inv.screening.ValidSeat(seat) {
			inv.booked[seat] = struct{}{}
		}
	}
}

func (inv *SeatInventory) IsBooked(seat string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	_, ok := inv.booked[seat]
	return ok
}

// BookedSeats returns the booked identifiers in lexicographic order.
func (inv *SeatInventory) BookedSeats() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	seats := make([]string, 0, len(inv.booked))
	for seat := range inv.booked {
		seats = append(seats, seat)
	}

	sort.Strings(seats)

	return seats
}

func (inv *SeatInventory) Count() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return len(inv.booked)
}

// Reserve books all requested seats as a single atomic step. If any identifier is
// invalid or any seat is already booked, no seat is committed: the failure reports
// the full offending subset and the inventory is left untouched.
func (inv *SeatInventory) Reserve(seats []string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var invalid, conflicting []string

	requested := make(map[string]struct{}, len(seats))

	for _, seat := range seats {
		if _, ok := requested[seat]; ok {
			continue
		}
		requested[seat] = struct{}{}

		if !inv.screening.ValidSeat(seat) {
			invalid = append(invalid, seat)
			continue
		}

		if _, ok := inv.booked[seat]; ok {
			conflicting = append(conflicting, seat)
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &InvalidSeatError{Seats: invalid}
	}

	if len(conflicting) > 0 {
		sort.Strings(conflicting)
		return &SeatConflictError{Seats: conflicting}
	}

	for seat := range requested {
		inv.booked[seat] = struct{}{}
	}

	return nil
}

// Clear empties the booked set unconditionally.
func (inv *SeatInventory) Clear() {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.booked = make(map[string]struct{})
}
