// Package http provides the JSON transport for the ledger services.
package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tabshare/tabshare/internal/service"
)

// Server wires the ledger services to HTTP routes.
type Server struct {
	users       *service.UserService
	expenses    *service.ExpenseService
	balances    *service.BalanceService
	settlements *service.SettlementService
	staticDir   string
}

// NewServer creates a Server. staticDir may be empty to disable the
// frontend file server.
func NewServer(
	users *service.UserService,
	expenses *service.ExpenseService,
	balances *service.BalanceService,
	settlements *service.SettlementService,
	staticDir string,
) *Server {
	return &Server{
		users:       users,
		expenses:    expenses,
		balances:    balances,
		settlements: settlements,
		staticDir:   staticDir,
	}
}

// Handler returns the root handler with all routes and middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /api/balances", s.handleGetBalances)
	mux.HandleFunc("POST /api/splits/{id}/settle", s.handleMarkSettled)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("/", s.handleStatic)

	return loggingMiddleware(metricsMiddleware(corsMiddleware(mux)))
}

// handleStatic serves the frontend, falling back to index.html for unknown
// paths.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if s.staticDir == "" {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(s.staticDir, filepath.Clean(urlPath))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
		return
	}

	http.ServeFile(w, r, filePath)
}
