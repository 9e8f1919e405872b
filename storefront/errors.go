package storefront

import "errors"

// Typed failures surfaced to the API layer. Every precondition is
// checked before any write, so a returned error always means "nothing
// changed". Match with errors.Is: operations wrap these to name the
// offending title or account.
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTitleNotFound       = errors.New("title not found")
	ErrAlreadyOwned        = errors.New("title already in library")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidRating       = errors.New("rating must be between 0 and 10")
	ErrNotOwned            = errors.New("title not in library")
	ErrSelfFriendship      = errors.New("cannot befriend yourself")
	ErrDuplicateFriendship = errors.New("friendship already exists")
	ErrFriendshipNotFound  = errors.New("friendship not found")
)
