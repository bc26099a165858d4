package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrRecurringNotFound   = errors.New("recurring transaction not found")

	// ErrCategoryNotDeletable covers both "id is a built-in category" and
	// "no custom category with this id owned by the caller". The two cases
	// are deliberately indistinguishable.
	ErrCategoryNotDeletable = errors.New("cannot delete default category or category not found")
)
