// Package engine orchestrates bookings and catalog administration over the
// in-memory catalog, flushing the whole catalog document after every mutation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bennettmovies/booking-engine/internal/domain"
)

// Engine owns the catalog and its store. It is safe for concurrent use: seat
// commits are serialized per screening by the seat inventories, catalog index
// changes by the catalog itself, and flushes by the engine's flush mutex.
type Engine struct {
	logger  *slog.Logger
	catalog *domain.Catalog
	store   domain.CatalogStore
	flushMu sync.Mutex
}

func New(catalog *domain.Catalog, store domain.CatalogStore, logger *slog.Logger) *Engine {
	return &Engine{
		logger:  logger,
		catalog: catalog,
		store:   store,
	}
}

// Occupancy summarizes one screening's seat usage.
type Occupancy struct {
	Screening domain.Screening
	Total     int
	Booked    int
	Available int
}

// ListScreenings returns every screening in display order with occupancy counts.
func (e *Engine) ListScreenings() []Occupancy {
	screenings := e.catalog.List()
	occupancies := make([]Occupancy, 0, len(screenings))

	for _, screening := range screenings {
		booked := 0
		if inventory, err := e.catalog.Inventory(screening.ID); err == nil {
			booked = inventory.Count()
		}

		total := screening.SeatCount()
		occupancies = append(occupancies, Occupancy{
			Screening: screening,
			Total:     total,
			Booked:    booked,
			Available: total - booked,
		})
	}

	return occupancies
}

// SeatMap returns a screening's geometry together with its booked seats, sorted.
func (e *Engine) SeatMap(screeningID string) (domain.Screening, []string, error) {
	screening, err := e.catalog.Get(screeningID)
	if err != nil {
		return domain.Screening{}, nil, err
	}

	inventory, err := e.catalog.Inventory(screeningID)
	if err != nil {
		return domain.Screening{}, nil, err
	}

	return screening, inventory.BookedSeats(), nil
}

// Book atomically reserves the requested seats and flushes the catalog. A flush
// failure is returned as domain.ErrNotDurable together with the booking itself:
// the reservation stands, it is just not durable yet.
func (e *Engine) Book(ctx context.Context, screeningID string, seats []string, name, phone string) (*domain.Booking, error) {
	screening, err := e.catalog.Get(screeningID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return nil, domain.ErrMissingCustomerInfo
	}

	if len(seats) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}

	inventory, err := e.catalog.Inventory(screeningID)
	if err != nil {
		return nil, err
	}

	// Generate the ticket before committing seats: once Reserve succeeds the
	// only acceptable failure mode is a failed flush, reported as not-durable.
	ticketID, err := domain.NewTicketID()
	if err != nil {
		return nil, fmt.Errorf("generating ticket id: %w", err)
	}

	if err := inventory.Reserve(seats); err != nil {
		return nil, err
	}

	committed := uniqueSeats(seats)
	sort.Strings(committed)

	booking := &domain.Booking{
		TicketID:      ticketID,
		ScreeningID:   screening.ID,
		Seats:         committed,
		CustomerName:  name,
		CustomerPhone: phone,
		Total:         domain.TotalFor(len(committed)),
		CreatedAt:     time.Now(),
	}

	if err := e.Flush(ctx); err != nil {
		e.logger.Error("catalog flush failed after booking",
			"screening_id", screeningID, "ticket_id", ticketID, "error", err)
		return booking, fmt.Errorf("%w: %w", domain.ErrNotDurable, err)
	}

	e.logger.Info("booking committed",
		"screening_id", screeningID, "ticket_id", ticketID, "seats", len(booking.Seats))

	return booking, nil
}

// AddScreening inserts a new screening with an empty inventory and flushes.
func (e *Engine) AddScreening(ctx context.Context, screening domain.Screening) error {
	if screening.Rows < 1 || screening.Rows > domain.MaxRows ||
		screening.Cols < 1 || screening.Cols > domain.MaxCols {
		return domain.ErrInvalidGeometry
	}

	if err := e.catalog.Add(screening); err != nil {
		return err
	}

	if err := e.Flush(ctx); err != nil {
		e.logger.Error("catalog flush failed after add", "screening_id", screening.ID, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrNotDurable, err)
	}

	e.logger.Info("screening added", "screening_id", screening.ID)

	return nil
}

// ClearBookings empties a screening's inventory and flushes.
func (e *Engine) ClearBookings(ctx context.Context, screeningID string) error {
	inventory, err := e.catalog.Inventory(screeningID)
	if err != nil {
		return err
	}

	inventory.Clear()

	if err := e.Flush(ctx); err != nil {
		e.logger.Error("catalog flush failed after clear", "screening_id", screeningID, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrNotDurable, err)
	}

	e.logger.Info("bookings cleared", "screening_id", screeningID)

	return nil
}

// DeleteScreening removes a screening and its inventory, then flushes.
func (e *Engine) DeleteScreening(ctx context.Context, screeningID string) error {
	if err := e.catalog.Remove(screeningID); err != nil {
		return err
	}

	if err := e.Flush(ctx); err != nil {
		e.logger.Error("catalog flush failed after delete", "screening_id", screeningID, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrNotDurable, err)
	}

	e.logger.Info("screening deleted", "screening_id", screeningID)

	return nil
}

// Flush writes the current catalog to the store. The mutex serializes writers and
// guarantees each write snapshots state no older than the mutation that caused it,
// so a slow flush can never clobber a later commit with stale data.
func (e *Engine) Flush(ctx context.Context) error {
	e.flushMu.Lock()
	defer e.flushMu.Unlock()

	return e.store.Save(ctx, e.catalog.Snapshot())
}

func uniqueSeats(seats []string) []string {
	seen := make(map[string]struct{}, len(seats))
	unique := make([]string, 0, len(seats))

	for _, seat := range seats {
		if _, ok := seen[seat]; ok {
			continue
		}
		seen[seat] = struct{}{}
		unique = append(unique, seat)
	}

	return unique
}
