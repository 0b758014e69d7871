package controller

import (
	"net/http"
	"strconv"

	"github.com/lucasferreira/fintrack/internal/domain/analytics"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/service"
)

// AnalyticsController handles the derived read-only views.
type AnalyticsController struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func dateRangeFromQuery(r *http.Request) analytics.DateRange {
	return analytics.DateRange{
		Start: queryDate(r, "startDate"),
		End:   queryDate(r, "endDate"),
	}
}

// Summary handles GET /analytics/summary
func (h *AnalyticsController) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.analyticsService.Summary(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FromSummary(sum))
}

// ByCategory handles GET /analytics/by-category
func (h *AnalyticsController) ByCategory(w http.ResponseWriter, r *http.Request) {
	txType := transaction.Type(r.URL.Query().Get("type"))

	breakdown, err := h.analyticsService.CategoryBreakdown(r.Context(), txType, dateRangeFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]*CategoryTotalResponse, 0, len(breakdown))
	for _, ct := range breakdown {
		resp = append(resp, &CategoryTotalResponse{
			Category: ct.Category,
			Total:    centsToFloat(ct.TotalCents),
			Count:    ct.Count,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Monthly handles GET /analytics/monthly
func (h *AnalyticsController) Monthly(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	trend, err := h.analyticsService.MonthlyTrend(r.Context(), months)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]*MonthlyPointResponse, 0, len(trend))
	for _, mp := range trend {
		resp = append(resp, &MonthlyPointResponse{
			Month:    mp.Month,
			Income:   centsToFloat(mp.IncomeCents),
			Expenses: centsToFloat(mp.ExpensesCents),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
