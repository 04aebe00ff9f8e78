package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tabshare/tabshare/internal/ledger"
	"github.com/tabshare/tabshare/internal/models"
	"github.com/tabshare/tabshare/internal/storage"
)

// UserService registers users and lists them. It enforces unique-email
// identity on top of the store.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new user. Name and email are required; a duplicate
// email fails with a ledger.ConflictError and leaves the existing record
// untouched.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, &ledger.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return nil, &ledger.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		slog.Error("Create user: email lookup failed", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, &ledger.ConflictError{Resource: "user", Key: email}
	}

	user := &models.User{Name: name, Email: email}
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("Create user failed", "email", email, "error", err)
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID, "email", email)
	return user, nil
}

// List returns all registered users in creation order.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.Error("List users failed", "error", err)
		return nil, err
	}
	return users, nil
}
