package app

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bennettmovies/booking-engine/api"
	"github.com/bennettmovies/booking-engine/internal/domain"
)

func (app *application) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var input api.AdminLoginRequest

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

	usernameMatch := subtle.ConstantTimeCompare([]byte(input.Username), []byte(app.config.admin.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(input.Password), []byte(app.config.admin.password))

	if usernameMatch&passwordMatch != 1 {
		app.logger.Warn("failed admin login attempt")
		app.errorResponse(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), true)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) AdminLogout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminDashboard mirrors the public listing; it exists so the console reads
// occupancy through an authenticated route.
func (app *application) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	app.ListScreenings(w, r)
}

func (app *application) AddScreening(w http.ResponseWriter, r *http.Request) {
	var input api.AddScreeningRequest

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

	screening := domain.Screening{
		ID:        input.Id,
		Title:     input.Title,
		Genre:     input.Genre,
		Duration:  input.Duration,
		Rating:    input.Rating,
		PosterURL: input.PosterUrl,
		Rows:      input.Rows,
		Cols:      input.Cols,
	}

	err = app.engine.AddScreening(r.Context(), screening)

	durable, err := app.durableOrError(err)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateScreening):
			app.conflictResponse(w, r, err.Error())
		case errors.Is(err, domain.ErrInvalidGeometry):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.AdminMutationResponse{ScreeningId: screening.ID, Durable: durable}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "screeningID")

	err := app.engine.DeleteScreening(r.Context(), screeningID)

	durable, err := app.durableOrError(err)
	if err != nil {
		if errors.Is(err, domain.ErrScreeningNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AdminMutationResponse{ScreeningId: screeningID, Durable: durable}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ClearBookings(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "screeningID")

	err := app.engine.ClearBookings(r.Context(), screeningID)

	durable, err := app.durableOrError(err)
	if err != nil {
		if errors.Is(err, domain.ErrScreeningNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AdminMutationResponse{ScreeningId: screeningID, Durable: durable}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// durableOrError applies the uniform flush-failure policy: a not-durable error
// means the mutation stands, so the operation still succeeds with durable=false.
func (app *application) durableOrError(err error) (bool, error) {
	if err == nil {
		return true, nil
	}

	if errors.Is(err, domain.ErrNotDurable) {
		return false, nil
	}

	return false, err
}
