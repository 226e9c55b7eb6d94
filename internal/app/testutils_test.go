package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bennettmovies/booking-engine/api"
	"github.com/bennettmovies/booking-engine/internal/domain"
	"github.com/bennettmovies/booking-engine/internal/engine"
	"github.com/bennettmovies/booking-engine/internal/validator"
)

func newTestApplication(catalog *domain.Catalog, store domain.CatalogStore) *application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &application{
		logger:         logger,
		validator:      validator.NewValidator(),
		sessionManager: newSessionManager(),
		engine:         engine.New(catalog, store, logger),
	}

	app.config.env = "test"
	app.config.admin.username = "admin"
	app.config.admin.password = "admin123"

	return app
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	catalog := domain.NewCatalog()

	err := catalog.Add(domain.Screening{
		ID:        "scr-1",
		Title:     "Interstellar",
		Genre:     "Sci-Fi",
		Duration:  "169 min",
		Rating:    "8.7",
		PosterURL: "http://example.com/interstellar.jpg",
		Rows:      2,
		Cols:      2,
	})
	if err != nil {
		t.Fatal(err)
	}

	return catalog
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withURLParam plants a chi route parameter so handlers can be invoked directly.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession runs a bare handler under the scs middleware, which handlers using
// session state require.
func withSession(app *application, h http.HandlerFunc) http.Handler {
	return app.sessionManager.LoadAndSave(h)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if wantErrMessage != "" && !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
