package handler

import (
	"net/http"
	"strconv"

	"github.com/Shivanand-hulikatti/event-finder/internal/district"
	"github.com/go-chi/chi/v5"
)

// ListProvinces handles GET /districts
func ListProvinces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, district.LevelOne())
}

// ListDistricts handles GET /districts/{id}/children
func ListDistricts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, district.LevelTwo(id))
}

// SearchDistricts handles GET /districts/search?q=
// Matching is done on consonants and vowels, so partially typed syllables
// match ("강나" finds "강남구").
func SearchDistricts(w http.ResponseWriter, r *http.Request) {
	matches := district.Search(r.URL.Query().Get("q"))
	if matches == nil {
		matches = []district.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}
