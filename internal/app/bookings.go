package app

import (
	"errors"
	"net/http"

	"github.com/bennettmovies/booking-engine/api"
	"github.com/bennettmovies/booking-engine/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.engine.Book(r.Context(), input.ScreeningId, input.Seats, input.CustomerName, input.CustomerPhone)

	durable := true
	if err != nil && errors.Is(err, domain.ErrNotDurable) {
		// The reservation is committed in memory; report it with durable=false
		// rather than rolling back.
		durable = false
		err = nil
	}

	if err != nil {
		var conflict *domain.SeatConflictError
		var invalid *domain.InvalidSeatError

		switch {
		case errors.Is(err, domain.ErrScreeningNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &conflict):
			app.seatConflictResponse(w, r, conflict)
		case errors.As(err, &invalid):
			app.invalidSeatResponse(w, r, invalid)
		case errors.Is(err, domain.ErrMissingCustomerInfo), errors.Is(err, domain.ErrNoSeatsSelected):
			// Validation the request-level tags cannot catch, e.g. a
			// whitespace-only name. Same class of failure, same status.
			app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		TicketId:    booking.TicketID,
		ScreeningId: booking.ScreeningID,
		Seats:       booking.Seats,
		Total:       booking.Total,
		Durable:     durable,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
