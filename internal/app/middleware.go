package app

import (
	"fmt"
	"net/http"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAdmin gates the admin console. Authentication itself happens in
// AdminLogin; the engine trusts any call that carries the session.
func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.sessionManager.GetBool(r.Context(), SessionKeyAdmin.String()) {
			app.unauthorizedResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
