package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tajer-be/internal/logger"
	"tajer-be/internal/merchant"
	"tajer-be/internal/middleware"
	"tajer-be/internal/order"
	"tajer-be/internal/settings"
	"tajer-be/internal/wallet"
)

type Server struct {
	orders    order.Service
	wallets   wallet.Service
	settings  settings.Service
	merchants merchant.Service

	server *http.Server
}

func New(orders order.Service, wallets wallet.Service, settingsSvc settings.Service, merchants merchant.Service) *Server {
	return &Server{
		orders:    orders,
		wallets:   wallets,
		settings:  settingsSvc,
		merchants: merchants,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go s.handleShutdown()

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router builds the full route table. Auth endpoints stay outside the JWT
// middleware; everything under /api otherwise requires a merchant token.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/status", s.handleUpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/orders/{id}/collect", s.handleCollect).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/return", s.handleReturnAfterCollection).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/exchange", s.handleCreateExchange).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/profit-loss", s.handleProfitLoss).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/transactions", s.handleOrderTransactions).Methods(http.MethodGet)

	api.HandleFunc("/wallet/transactions", s.handleListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/wallet/transactions", s.handleRecordTransaction).Methods(http.MethodPost)
	api.HandleFunc("/wallet/balance", s.handleBalance).Methods(http.MethodGet)

	api.HandleFunc("/settings/fees", s.handleGetGlobalSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings/fees", s.handleUpdateGlobalSettings).Methods(http.MethodPut)
	api.HandleFunc("/settings/companies", s.handleListCompanies).Methods(http.MethodGet)
	api.HandleFunc("/settings/companies/{name}", s.handleUpsertCompany).Methods(http.MethodPut)
	api.HandleFunc("/settings/companies/{name}", s.handleDeleteCompany).Methods(http.MethodDelete)

	var handler http.Handler = r
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = middleware.CORS(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
