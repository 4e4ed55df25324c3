package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/solomon-finance/solomon/internal/auth"
	"github.com/solomon-finance/solomon/internal/config"
	database "github.com/solomon-finance/solomon/internal/db"
	"github.com/solomon-finance/solomon/internal/export"
	"github.com/solomon-finance/solomon/internal/finance/application"
	"github.com/solomon-finance/solomon/internal/finance/infrastructure"
	"github.com/solomon-finance/solomon/internal/finance/interfaces"
	"github.com/solomon-finance/solomon/internal/user"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authService        *auth.Service
	authHandler        *auth.Handler
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	creditCardHandler  *interfaces.CreditCardHandler
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	protectedRoutes := http.NewServeMux()
	jwtMiddleware := s.authService.JWTAccessTokenMiddleware()

	protectedRoutes.Handle("POST /api/protected/transactions", jwtMiddleware(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions", jwtMiddleware(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	protectedRoutes.Handle("GET /api/protected/transactions/export", jwtMiddleware(http.HandlerFunc(s.transactionHandler.ExportTransactions)))
	protectedRoutes.Handle("GET /api/protected/transactions/{id}", jwtMiddleware(http.HandlerFunc(s.transactionHandler.GetTransaction)))

	protectedRoutes.Handle("GET /api/protected/categories", jwtMiddleware(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("GET /api/protected/categories/{id}", jwtMiddleware(http.HandlerFunc(s.categoryHandler.GetCategory)))

	protectedRoutes.Handle("GET /api/protected/credit-cards", jwtMiddleware(http.HandlerFunc(s.creditCardHandler.GetCreditCards)))
	protectedRoutes.Handle("POST /api/protected/credit-cards", jwtMiddleware(http.HandlerFunc(s.creditCardHandler.CreateCreditCard)))
	protectedRoutes.Handle("GET /api/protected/credit-cards/{id}", jwtMiddleware(http.HandlerFunc(s.creditCardHandler.GetCreditCard)))
	protectedRoutes.Handle("PATCH /api/protected/credit-cards/{id}", jwtMiddleware(http.HandlerFunc(s.creditCardHandler.UpdateCreditCard)))
	protectedRoutes.Handle("DELETE /api/protected/credit-cards/{id}", jwtMiddleware(http.HandlerFunc(s.creditCardHandler.DeleteCreditCard)))

	s.router.Handle("/api/", publicRoutes)
	s.router.Handle("/api/protected/", protectedRoutes)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString)
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(); err != nil {
		log.Fatalf("Could not migrate the database: %v", err)
	}

	userRepo := user.NewSQLRepository(dbService.DB)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, respondJSON, respondError)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewService(userService, jwtManager)
	authHandler := auth.NewHandler(authService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	creditCardRepo := infrastructure.NewCreditCardRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	creditCardService := application.NewCreditCardService(creditCardRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, creditCardService, export.NewCSVExporter())

	server := &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authService:        authService,
		authHandler:        authHandler,
		userHandler:        userHandler,
		transactionHandler: interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		creditCardHandler:  interfaces.NewCreditCardHandler(creditCardService, respondJSON, respondError),
	}
	server.RegisterRoutes()

	log.Printf("Server listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
