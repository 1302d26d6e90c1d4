package handlers

import (
	"net/http"

	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/services"

	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.categoryService.GetAllCategories(ctx)
	if err != nil {
		logger.LogEvent(logrus.ErrorLevel, "Error fetching categories", logrus.Fields{"error": err})
		respondWithError(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	response := map[string]interface{}{
		"categories": categories,
		"total":      len(categories),
	}

	respondWithJSON(w, http.StatusOK, response)
}
