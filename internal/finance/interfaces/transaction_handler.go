package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(request *domain.TransactionRequest) (*domain.Transaction, error)
	GetTransaction(transactionID, userID string) (*domain.Transaction, error)
	GetTransactions(userID string, rawFilters map[string]string, params domain.PaginationParams) (*domain.PagedResult, error)
	ExportTransactions(userID string, rawFilters map[string]string) ([]byte, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type createTransactionRequest struct {
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	IsFixed            bool            `json:"is_fixed"`
	IsRevenue          bool            `json:"is_revenue"`
	Date               string          `json:"date"`
	RecurringDay       *int            `json:"recurring_day"`
	Kind               string          `json:"kind"`
	CategoryID         string          `json:"category_id"`
	CreditCardID       *string         `json:"credit_card_id"`
	InstallmentsNumber *int            `json:"installments_number"`
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request := domain.TransactionRequest{
		Description:        body.Description,
		Amount:             body.Amount,
		IsFixed:            body.IsFixed,
		IsRevenue:          body.IsRevenue,
		RecurringDay:       body.RecurringDay,
		Kind:               domain.Kind(body.Kind),
		CategoryID:         body.CategoryID,
		UserID:             userID,
		CreditCardID:       body.CreditCardID,
		InstallmentsNumber: body.InstallmentsNumber,
	}
	if body.Date != "" {
		date, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		request.Date = &date
	}

	transaction, err := h.service.CreateTransaction(&request)
	if err != nil {
		h.respondServiceError(w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetTransaction(r.PathValue("id"), userID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params, err := paginationParams(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.GetTransactions(userID, filterParams(r), params)
	if err != nil {
		h.respondServiceError(w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    result.Items,
		"meta": map[string]interface{}{
			"page":  result.Page,
			"pages": result.Pages,
			"size":  result.Size,
			"total": result.Total,
		},
	})
}

func (h *TransactionHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := h.service.ExportTransactions(userID, filterParams(r))
	if err != nil {
		h.respondServiceError(w, err, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// respondServiceError maps the error taxonomy onto HTTP statuses. Unknown
// errors are logged and hidden behind a generic message.
func (h *TransactionHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err), financeErrors.IsFilterError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err), financeErrors.IsNoDataError(err):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s: %v", fallback, err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// filterParams collects every query parameter except the pagination ones as
// a raw filter entry; the service decides whether the keys are valid.
func filterParams(r *http.Request) map[string]string {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if key == "page" || key == "size" {
			continue
		}
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return filters
}

func paginationParams(r *http.Request) (domain.PaginationParams, error) {
	params := domain.PaginationParams{Page: 1, Size: 20}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return params, &invalidParamError{"Invalid page value"}
		}
		params.Page = page
	}
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return params, &invalidParamError{"Invalid size value"}
		}
		params.Size = size
	}
	return params, nil
}

type invalidParamError struct {
	msg string
}

func (e *invalidParamError) Error() string { return e.msg }
