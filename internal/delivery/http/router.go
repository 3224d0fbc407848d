package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsignup/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireSession is the guard applied to every administrative route.
func NewRouter(
	events *controllers.EventController,
	signups *controllers.SignupController,
	auth *controllers.AuthController,
	requireSession func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/signups", signups.CreateSignup)

	// Admin: every mutating route sits behind the session guard.
	mux.HandleFunc("GET /admin/events", requireSession(events.AdminListEvents))
	mux.HandleFunc("POST /admin/events", requireSession(events.CreateEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}", requireSession(events.UpdateEvent))
	mux.HandleFunc("GET /admin/signups", requireSession(signups.ListSignups))

	// Auth
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
