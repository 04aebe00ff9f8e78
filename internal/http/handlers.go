package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tabshare/tabshare/internal/ledger"
	"github.com/tabshare/tabshare/internal/service"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type splitRequest struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

type createExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PayerID     string          `json:"payer_id"`
	Date        string          `json:"date,omitempty"`
	Splits      []splitRequest  `json:"splits"`
}

type splitResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	IsSettled bool            `json:"is_settled"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	Date        string          `json:"date"`
	Splits      []splitResponse `json:"splits"`
}

type balanceResponse struct {
	Name    string          `json:"name"`
	Owes    decimal.Decimal `json:"owes"`
	Owed    decimal.Decimal `json:"owed"`
	Balance decimal.Decimal `json:"balance"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &ledger.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	if _, err := s.users.Create(r.Context(), req.Name, req.Email); err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, user := range users {
		resp[i] = userResponse{ID: user.ID, Name: user.Name, Email: user.Email}
	}
	respond(w, http.StatusOK, resp)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &ledger.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	in := service.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		PayerID:     req.PayerID,
		Splits:      make([]service.SplitInput, len(req.Splits)),
	}
	for i, split := range req.Splits {
		in.Splits[i] = service.SplitInput{UserID: split.UserID, Amount: split.Amount}
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			respondError(w, &ledger.ValidationError{Field: "date", Reason: "must be RFC 3339"})
			return
		}
		in.Date = date.Unix()
	}

	if _, err := s.expenses.Create(r.Context(), in); err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusCreated, map[string]string{"message": "Expense added successfully"})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	details, err := s.expenses.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]expenseResponse, len(details))
	for i, detail := range details {
		expense := detail.Expense
		splits := make([]splitResponse, len(expense.Splits))
		for j, split := range expense.Splits {
			splits[j] = splitResponse{
				ID:        split.ID,
				UserID:    split.UserID,
				Amount:    split.Amount,
				IsSettled: split.Settled,
			}
		}
		resp[i] = expenseResponse{
			ID:          expense.ID,
			Description: expense.Description,
			Amount:      expense.Amount,
			Payer:       detail.PayerName,
			Date:        time.Unix(expense.Date, 0).UTC().Format(time.RFC3339),
			Splits:      splits,
		}
	}
	respond(w, http.StatusOK, resp)
}

func (s *Server) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.balances.Compute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make(map[string]balanceResponse, len(balances))
	for userID, bal := range balances {
		resp[userID] = balanceResponse{
			Name:    bal.Name,
			Owes:    bal.Owes,
			Owed:    bal.Owed,
			Balance: bal.Net,
		}
	}
	respond(w, http.StatusOK, resp)
}

func (s *Server) handleMarkSettled(w http.ResponseWriter, r *http.Request) {
	splitID := r.PathValue("id")
	if err := s.settlements.MarkSettled(r.Context(), splitID); err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "Split settled"})
}
