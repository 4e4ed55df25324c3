package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

type CreditCardServiceInterface interface {
	GetCreditCards(userID string) ([]domain.CreditCard, error)
	GetCreditCard(creditCardID, userID string) (*domain.CreditCard, error)
	CreateCreditCard(card domain.CreditCard) (*domain.CreditCard, error)
	UpdateCreditCard(creditCardID, userID string, patch domain.CreditCardPatch) (*domain.CreditCard, error)
	DeleteCreditCard(creditCardID, userID string) (*domain.CreditCard, error)
}

type CreditCardHandler struct {
	service      CreditCardServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCreditCardHandler(
	service CreditCardServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CreditCardHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CreditCardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type createCreditCardRequest struct {
	Name            string          `json:"name"`
	Limit           decimal.Decimal `json:"limit"`
	InvoiceStartDay int             `json:"invoice_start_day"`
}

func (h *CreditCardHandler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cards, err := h.service.GetCreditCards(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve credit cards")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Credit cards retrieved successfully.",
		"data":    cards,
	})
}

func (h *CreditCardHandler) GetCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	card, err := h.service.GetCreditCard(r.PathValue("id"), userID)
	if err != nil {
		h.respondCardError(w, err, "Failed to retrieve credit card")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Credit card retrieved successfully.",
		"data":    card,
	})
}

func (h *CreditCardHandler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body createCreditCardRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" || body.InvoiceStartDay < 1 || body.InvoiceStartDay > 31 {
		h.respondError(w, http.StatusBadRequest, "Name and an invoice start day between 1 and 31 are required")
		return
	}

	card, err := h.service.CreateCreditCard(domain.CreditCard{
		UserID:          userID,
		Name:            body.Name,
		Limit:           body.Limit,
		InvoiceStartDay: body.InvoiceStartDay,
	})
	if err != nil {
		h.respondCardError(w, err, "Failed to create credit card")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Credit card successfully created.",
		"data":    card,
	})
}

func (h *CreditCardHandler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch domain.CreditCardPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.InvoiceStartDay != nil && (*patch.InvoiceStartDay < 1 || *patch.InvoiceStartDay > 31) {
		h.respondError(w, http.StatusBadRequest, "Invoice start day must be between 1 and 31")
		return
	}

	card, err := h.service.UpdateCreditCard(r.PathValue("id"), userID, patch)
	if err != nil {
		h.respondCardError(w, err, "Failed to update credit card")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Credit card successfully updated.",
		"data":    card,
	})
}

func (h *CreditCardHandler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	card, err := h.service.DeleteCreditCard(r.PathValue("id"), userID)
	if err != nil {
		h.respondCardError(w, err, "Failed to delete credit card")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Credit card successfully deleted.",
		"data":    card,
	})
}

func (h *CreditCardHandler) respondCardError(w http.ResponseWriter, err error, fallback string) {
	if financeErrors.IsNotFoundError(err) {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("%s: %v", fallback, err)
	h.respondError(w, http.StatusInternalServerError, fallback)
}
