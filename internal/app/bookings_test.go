package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bennettmovies/booking-engine/api"
	"github.com/bennettmovies/booking-engine/internal/domain"
	"github.com/bennettmovies/booking-engine/internal/mocks"
	"github.com/bennettmovies/booking-engine/internal/validator"
)

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		saveFunc       func(ctx context.Context, doc domain.CatalogDocument) error
		preBooked      []string
		wantStatus     int
		wantErrMessage string
		wantSeats      []string
		wantTotal      string
		wantDurable    bool
		wantConflicts  []string
	}{
		{
			name: "successful booking",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"B2", "A1"},
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			wantStatus:  http.StatusCreated,
			wantSeats:   []string{"A1", "B2"},
			wantTotal:   "300",
			wantDurable: true,
		},
		{
			name: "flush failure reports not durable",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"A1"},
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			saveFunc: func(ctx context.Context, doc domain.CatalogDocument) error {
				return fmt.Errorf("disk full")
			},
			wantStatus:  http.StatusCreated,
			wantSeats:   []string{"A1"},
			wantTotal:   "150",
			wantDurable: false,
		},
		{
			name: "unknown screening",
			body: api.BookingRequest{
				ScreeningId:   "missing",
				Seats:         []string{"A1"},
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "already booked seat",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"A1", "A2"},
				CustomerName:  "Grace Hopper",
				CustomerPhone: "5550101",
			},
			preBooked:     []string{"A1", "B2"},
			wantStatus:    http.StatusConflict,
			wantConflicts: []string{"A1"},
		},
		{
			name: "seat outside geometry",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"Z9"},
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "missing customer name",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"A1"},
				CustomerPhone: "5550100",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "empty seat selection",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "malformed seat identifier",
			body: api.BookingRequest{
				ScreeningId:   "scr-1",
				Seats:         []string{"1A"},
				CustomerName:  "Ada Lovelace",
				CustomerPhone: "5550100",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrSeatID,
		},
		{
			name:       "malformed body",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := testCatalog(t)

			if len(tt.preBooked) > 0 {
				inv, err := catalog.Inventory("scr-1")
				if err != nil {
					t.Fatal(err)
				}
				if err := inv.Reserve(tt.preBooked); err != nil {
					t.Fatal(err)
				}
			}

			app := newTestApplication(catalog, &mocks.MockCatalogStore{SaveFunc: tt.saveFunc})

			w, r := executeRequest(t, http.MethodPost, "/bookings", tt.body)

			app.CreateBooking(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateBooking() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				var response api.BookingResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if len(response.TicketId) != 8 {
					t.Errorf("CreateBooking() ticket id = %q, want 8 characters", response.TicketId)
				}

				if diff := cmp.Diff(tt.wantSeats, response.Seats); diff != "" {
					t.Errorf("CreateBooking() seats mismatch (-want +got):\n%s", diff)
				}

				if got := response.Total.String(); got != tt.wantTotal {
					t.Errorf("CreateBooking() total = %v, want %v", got, tt.wantTotal)
				}

				if response.Durable != tt.wantDurable {
					t.Errorf("CreateBooking() durable = %v, want %v", response.Durable, tt.wantDurable)
				}

				return
			}

			if tt.wantConflicts != nil {
				var response api.SeatConflictResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode conflict response: %v", err)
				}

				if diff := cmp.Diff(tt.wantConflicts, response.ConflictingSeats); diff != "" {
					t.Errorf("CreateBooking() conflicting seats mismatch (-want +got):\n%s", diff)
				}

				return
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

// A whitespace-only name satisfies the required tag, so the engine's own check
// is the one that rejects it. It is still a validation failure to the client.
func TestCreateBookingWhitespaceCustomerInfo(t *testing.T) {
	catalog := testCatalog(t)
	app := newTestApplication(catalog, &mocks.MockCatalogStore{})

	w, r := executeRequest(t, http.MethodPost, "/bookings", api.BookingRequest{
		ScreeningId:   "scr-1",
		Seats:         []string{"A1"},
		CustomerName:  "   ",
		CustomerPhone: "5550100",
	})

	app.CreateBooking(w, r)

	if got := w.Code; got != http.StatusUnprocessableEntity {
		t.Fatalf("CreateBooking() status = %v, want %v", got, http.StatusUnprocessableEntity)
	}

	var response api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if got, want := response.Message, domain.ErrMissingCustomerInfo.Error(); got != want {
		t.Errorf("CreateBooking() message = %q, want %q", got, want)
	}

	inv, err := catalog.Inventory("scr-1")
	if err != nil {
		t.Fatal(err)
	}

	if inv.Count() != 0 {
		t.Errorf("booked seat count = %d, want 0", inv.Count())
	}
}

func TestCreateBookingDoesNotTouchOtherSeats(t *testing.T) {
	catalog := testCatalog(t)
	app := newTestApplication(catalog, &mocks.MockCatalogStore{})

	w, r := executeRequest(t, http.MethodPost, "/bookings", api.BookingRequest{
		ScreeningId:   "scr-1",
		Seats:         []string{"A1"},
		CustomerName:  "Ada Lovelace",
		CustomerPhone: "5550100",
	})

	app.CreateBooking(w, r)

	if got := w.Code; got != http.StatusCreated {
		t.Fatalf("CreateBooking() status = %v, want %v", got, http.StatusCreated)
	}

	inv, err := catalog.Inventory("scr-1")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"A1"}, inv.BookedSeats()); diff != "" {
		t.Errorf("booked seats mismatch (-want +got):\n%s", diff)
	}
}
