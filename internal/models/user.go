package models

// User represents a registered participant in the ledger.
//
// Users are created once and never updated or deleted; every expense payer
// and split references a user by ID.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address (unique across the ledger).
	Email string

	// CreatedAt is the Unix timestamp when the user was registered.
	// Listing order follows creation order.
	CreatedAt int64
}
