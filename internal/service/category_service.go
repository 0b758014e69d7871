package service

import (
	"github.com/lucasferreira/fintrack/internal/infrastructure/config"
)

// CategoryService serves the static suggestion taxonomy. Transactions
// accept any category string; these lists only feed client pickers.
type CategoryService struct {
	categories config.CategoriesConfig
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories config.CategoriesConfig) *CategoryService {
	return &CategoryService{categories: categories}
}

// Categories returns the income and expense suggestion lists.
func (s *CategoryService) Categories() config.CategoriesConfig {
	return s.categories
}
