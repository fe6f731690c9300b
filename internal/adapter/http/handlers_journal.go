package adapthttp

import (
	"net/http"

	"ifjourney/internal/domain"
)

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	date := dateQuery(r)

	switch r.Method {
	case http.MethodGet:
		meals, err := s.meals.List(r.Context(), sess.Email, date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		total, err := s.meals.TotalCalories(r.Context(), sess.Email, date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if meals == nil {
			meals = []domain.MealEntry{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"date": date, "items": meals, "totalCalories": total})

	case http.MethodPost:
		var req struct {
			Date     string `json:"date"`
			Name     string `json:"name"`
			Calories int    `json:"calories"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if req.Date == "" {
			req.Date = date
		}
		entry, err := s.meals.Add(r.Context(), sess.Email, req.Date, req.Name, req.Calories)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)

	case http.MethodPut:
		var req struct {
			Date  string             `json:"date"`
			Items []domain.MealEntry `json:"items"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if req.Date == "" {
			req.Date = date
		}
		if err := s.meals.ReplaceAll(r.Context(), sess.Email, req.Date, req.Items); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		removed, err := s.meals.Remove(r.Context(), sess.Email, date, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"removed": removed})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	date := dateQuery(r)

	switch r.Method {
	case http.MethodGet:
		workouts, err := s.workouts.List(r.Context(), sess.Email, date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		total, err := s.workouts.TotalBurned(r.Context(), sess.Email, date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if workouts == nil {
			workouts = []domain.WorkoutEntry{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"date": date, "items": workouts, "caloriesBurned": total})

	case http.MethodPost:
		var req struct {
			Date           string `json:"date"`
			Type           string `json:"type"`
			Duration       int    `json:"duration"`
			CaloriesBurned int    `json:"caloriesBurned"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if req.Date == "" {
			req.Date = date
		}
		entry, err := s.workouts.Add(r.Context(), sess.Email, req.Date, req.Type, req.Duration, req.CaloriesBurned)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
