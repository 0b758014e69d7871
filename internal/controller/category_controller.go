package controller

import (
	"net/http"

	"github.com/lucasferreira/fintrack/internal/service"
)

// CategoryController serves the static category taxonomy.
type CategoryController struct {
	categoryService *service.CategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// List handles GET /categories
func (h *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	cats := h.categoryService.Categories()
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Income:  cats.Income,
		Expense: cats.Expense,
	})
}
