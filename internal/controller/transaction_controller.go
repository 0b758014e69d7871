package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/service"
)

// TransactionController handles transaction-related HTTP requests.
type TransactionController struct {
	transactionService *service.TransactionService
}

// NewTransactionController creates a new TransactionController.
func NewTransactionController(transactionService *service.TransactionService) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

// List handles GET /transactions
func (h *TransactionController) List(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	// Filter values never produce a validation error: an unrecognized type
	// or category yields an empty result, and a date that does not parse is
	// dropped so it cannot blow up the DATE comparison in SQL.
	if s := r.URL.Query().Get("type"); s != "" {
		t := transaction.Type(s)
		filter.Type = &t
	}
	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}
	filter.StartDate = queryDate(r, "startDate")
	filter.EndDate = queryDate(r, "endDate")
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	transactions, err := h.transactionService.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]*TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, FromTransaction(tx))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /transactions
func (h *TransactionController) Create(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactionService.Create(r.Context(), service.CreateTransactionRequest{
		Type:        transaction.Type(req.Type),
		AmountCents: floatToCents(*req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromTransaction(tx))
}

// Update handles PUT /transactions/{id}
func (h *TransactionController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid transaction id", Code: "invalid_id"})
		return
	}

	var req TransactionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactionService.Update(r.Context(), id, service.UpdateTransactionRequest{
		Type:        transaction.Type(req.Type),
		AmountCents: floatToCents(*req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromTransaction(tx))
}

// Delete handles DELETE /transactions/{id}
func (h *TransactionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid transaction id", Code: "invalid_id"})
		return
	}

	if err := h.transactionService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
