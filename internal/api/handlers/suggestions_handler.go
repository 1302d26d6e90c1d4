package handlers

import (
	"net/http"

	"landmark-gallery/internal/services"

	"github.com/gorilla/mux"
)

// SuggestionResponse holds the matched values for one field.
type SuggestionResponse struct {
	Results []string `json:"results"`
}

type SuggestionsHandler struct {
	suggestionService services.SuggestionService
}

func NewSuggestionsHandler(suggestionService services.SuggestionService) *SuggestionsHandler {
	return &SuggestionsHandler{suggestionService: suggestionService}
}

func (h *SuggestionsHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["type"]
	if !services.IsSuggestionField(field) {
		respondWithError(w, http.StatusBadRequest, "Invalid search type")
		return
	}

	results, err := h.suggestionService.Suggest(r.Context(), field, r.URL.Query().Get("search"))
	if err != nil {
		respondWithError(w, statusFor(err), "Error performing search")
		return
	}

	respondWithJSON(w, http.StatusOK, SuggestionResponse{Results: results})
}
