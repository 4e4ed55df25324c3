package application

import (
	"github.com/google/uuid"

	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetCategory(categoryID string) (*domain.Category, error)
}

type CreditCardServiceInterface interface {
	GetCreditCard(creditCardID, userID string) (*domain.CreditCard, error)
}

// FileExporter serializes a report table into a concrete byte format.
type FileExporter interface {
	Export(table *domain.ReportTable) ([]byte, error)
}

type TransactionService struct {
	repo              domain.TransactionRepository
	categoryService   CategoryServiceInterface
	creditCardService CreditCardServiceInterface
	creditHandler     *CreditCardTransactionHandler
	exporter          FileExporter
}

func NewTransactionService(
	repo domain.TransactionRepository,
	categoryService CategoryServiceInterface,
	creditCardService CreditCardServiceInterface,
	exporter FileExporter,
) *TransactionService {
	return &TransactionService{
		repo:              repo,
		categoryService:   categoryService,
		creditCardService: creditCardService,
		creditHandler:     NewCreditCardTransactionHandler(repo),
		exporter:          exporter,
	}
}

// CreateTransaction validates and records a transaction. Variable credit
// transactions go through the credit card handler and come back with their
// installments; everything else is a single atomic insert.
func (s *TransactionService) CreateTransaction(request *domain.TransactionRequest) (*domain.Transaction, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categoryService.GetCategory(request.CategoryID); err != nil {
		return nil, err
	}
	if request.CreditCardID != nil {
		if _, err := s.creditCardService.GetCreditCard(*request.CreditCardID, request.UserID); err != nil {
			return nil, err
		}
	}

	if RequiresInstallmentHandling(*request) {
		return s.creditHandler.Process(*request)
	}

	transaction := mapRequestToTransaction(*request)
	transaction.ID = uuid.NewString()
	return s.repo.Create(transaction)
}

func (s *TransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.ErrTransactionNotFound
	}
	return transaction, nil
}

// GetTransactions returns one page of the user's transactions, newest date
// first, with installments attached.
func (s *TransactionService) GetTransactions(userID string, rawFilters map[string]string, params domain.PaginationParams) (*domain.PagedResult, error) {
	filters, err := domain.ParseFilters(rawFilters)
	if err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Size < 1 {
		params.Size = 20
	}
	return s.repo.Query(userID, filters, params)
}

// ExportTransactions flattens every transaction matched by the filters into
// the report table and serializes it with the configured exporter. Zero
// matches fail with NoDataError before any transformation is attempted.
func (s *TransactionService) ExportTransactions(userID string, rawFilters map[string]string) ([]byte, error) {
	filters, err := domain.ParseFilters(rawFilters)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.FindAll(userID, filters)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.ErrNoTransactions
	}

	table, err := TransformTransactions(transactions)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(table)
}
