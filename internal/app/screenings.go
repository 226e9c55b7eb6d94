package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bennettmovies/booking-engine/api"
	"github.com/bennettmovies/booking-engine/internal/domain"
	"github.com/bennettmovies/booking-engine/internal/engine"
)

func (app *application) ListScreenings(w http.ResponseWriter, r *http.Request) {
	occupancies := app.engine.ListScreenings()

	resp := api.ScreeningListResponse{
		Screenings: toScreeningSummaries(occupancies),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "screeningID")

	screening, bookedSeats, err := app.engine.SeatMap(screeningID)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	resp := toSeatMapResponse(screening, bookedSeats)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toScreeningSummaries(occupancies []engine.Occupancy) []api.ScreeningSummary {
	summaries := make([]api.ScreeningSummary, len(occupancies))

	for i, v := range occupancies {
		summaries[i] = api.ScreeningSummary{
			Id:             v.Screening.ID,
			Title:          v.Screening.Title,
			Genre:          v.Screening.Genre,
			Duration:       v.Screening.Duration,
			Rating:         v.Screening.Rating,
			PosterUrl:      v.Screening.PosterURL,
			Rows:           v.Screening.Rows,
			Cols:           v.Screening.Cols,
			TotalSeats:     v.Total,
			BookedSeats:    v.Booked,
			AvailableSeats: v.Available,
		}
	}

	return summaries
}

func toSeatMapResponse(screening domain.Screening, bookedSeats []string) api.SeatMapResponse {
	booked := make(map[string]bool, len(bookedSeats))
	for _, seat := range bookedSeats {
		booked[seat] = true
	}

	seatRows := make([]api.SeatRow, 0, screening.Rows)

	for r := 0; r < screening.Rows; r++ {
		row := api.SeatRow{
			Row:   string(rune('A' + r)),
			Seats: make([]api.Seat, 0, screening.Cols),
		}

		for c := 0; c < screening.Cols; c++ {
			id := domain.SeatID(r, c)
			row.Seats = append(row.Seats, api.Seat{
				Id:        id,
				Available: !booked[id],
			})
		}

		seatRows = append(seatRows, row)
	}

	return api.SeatMapResponse{
		ScreeningId: screening.ID,
		Rows:        screening.Rows,
		Cols:        screening.Cols,
		SeatRows:    seatRows,
	}
}
