// Package store holds all database access for users, portfolios and
// investments. Handlers never touch gorm directly; they call these
// functions and translate the sentinel errors into HTTP statuses.
package store

import "errors"

var (
	// ErrNotFound reports a missing record of any entity type.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail reports that the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrWrongPortfolio reports an investment that exists but belongs to
	// a different portfolio than the one addressed.
	ErrWrongPortfolio = errors.New("investment does not belong to this portfolio")
)
