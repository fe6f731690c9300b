package adapthttp

import "net/http"

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		p, err := s.profile.Get(r.Context(), sess.Email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		// A null body means the profile has not been completed yet.
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var req struct {
			Name      string  `json:"name"`
			Gender    string  `json:"gender"`
			BirthDate string  `json:"birthDate"`
			Weight    float64 `json:"weight"`
			Height    float64 `json:"height"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.profile.Save(r.Context(), sess.Email, req.Name, req.Gender, req.BirthDate, req.Weight, req.Height)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
