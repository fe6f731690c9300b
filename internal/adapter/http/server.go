// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"ifjourney/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	profile  *app.ProfileService
	fasting  *app.FastingService
	meals    *app.MealService
	workouts *app.WorkoutService
	oidc     OIDCConfig
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, profile *app.ProfileService, fasting *app.FastingService,
	meals *app.MealService, workouts *app.WorkoutService, oidc OIDCConfig) *Server {
	return &Server{
		auth:     auth,
		profile:  profile,
		fasting:  fasting,
		meals:    meals,
		workouts: workouts,
		oidc:     oidc,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/me", s.handleMe)
	api.HandleFunc("/auth/google/login", s.handleGoogleLogin)
	api.HandleFunc("/auth/google/callback", s.handleGoogleCallback)

	api.HandleFunc("/profile", s.handleProfile)

	api.HandleFunc("/fasting", s.handleFastingCurrent)
	api.HandleFunc("/fasting/start", s.handleFastingStart)
	api.HandleFunc("/fasting/pause", s.handleFastingPause)
	api.HandleFunc("/fasting/resume", s.handleFastingResume)
	api.HandleFunc("/fasting/complete", s.handleFastingComplete)
	api.HandleFunc("/fasting/clear", s.handleFastingClear)

	api.HandleFunc("/meals", s.handleMeals)
	api.HandleFunc("/workouts", s.handleWorkouts)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", s.authMiddleware(api)))

	return s.loggingMiddleware(withNoCache(root))
}
