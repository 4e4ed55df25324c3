package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

func authenticated(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "userID", userID))
}

func TestCreateTransaction_Success(t *testing.T) {
	service := &MockTransactionService{Transaction: &domain.Transaction{ID: "tx-1", Description: "Notebook"}}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body := `{"description":"Notebook","amount":"300.00","date":"2023-12-20","kind":"credit","category_id":"category-1","credit_card_id":"card-1","installments_number":3}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/protected/transactions", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, service.CreatedRequests, 1)

	created := service.CreatedRequests[0]
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, domain.KindCredit, created.Kind)
	assert.Equal(t, "300", created.Amount.String())
	assert.Equal(t, 3, *created.InstallmentsNumber)
	assert.Equal(t, time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC), *created.Date)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])
}

func TestCreateTransaction_ValidationErrorIsBadRequest(t *testing.T) {
	service := &MockTransactionService{Err: financeErrors.NewValidationError("recurring_day", "required when is_fixed is true")}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body := `{"description":"Streaming","amount":"29.90","is_fixed":true,"kind":"pix","category_id":"category-1"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/protected/transactions", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "recurring_day: required when is_fixed is true", response["message"])
}

func TestCreateTransaction_InvalidDate(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body := `{"description":"Lunch","amount":"42.00","date":"20-12-2023","kind":"cash","category_id":"category-1"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/protected/transactions", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.CreatedRequests)
}

func TestCreateTransaction_Unauthorized(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/protected/transactions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTransactions_ForwardsFiltersAndPagination(t *testing.T) {
	service := &MockTransactionService{Result: &domain.PagedResult{Items: []domain.Transaction{}, Page: 2, Size: 5, Total: 0, Pages: 0}}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions?page=2&size=5&amount__gt=100&kind__eq=credit", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.GetTransactions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Size: 5}, service.LastParams)
	assert.Equal(t, map[string]string{"amount__gt": "100", "kind__eq": "credit"}, service.LastFilters)
}

func TestGetTransactions_FilterErrorIsBadRequest(t *testing.T) {
	service := &MockTransactionService{Err: financeErrors.NewFilterError("unknown operator: %s", "bogus")}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions?date__bogus=x", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.GetTransactions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTransactions_InvalidPageValue(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions?page=zero", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.GetTransactions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.LastFilters)
}

func TestGetTransaction_NotFoundIs404(t *testing.T) {
	service := &MockTransactionService{Err: financeErrors.ErrTransactionNotFound}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions/missing", nil), "user-1")
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	handler.GetTransaction(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportTransactions_WritesAttachment(t *testing.T) {
	csv := "Description,Date,Recurring Day,Category,Credit Card,Amount\nGym,,5,Groceries,,100.00\n"
	service := &MockTransactionService{ExportData: []byte(csv)}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions/export", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.ExportTransactions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, csv, rec.Body.String())
}

func TestExportTransactions_NoDataIs404(t *testing.T) {
	service := &MockTransactionService{Err: financeErrors.ErrNoTransactions}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/protected/transactions/export", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.ExportTransactions(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
