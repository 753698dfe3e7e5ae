// Package domain holds errors and list parameters shared by every resource.
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error pairs one of the sentinels above with a message that is safe to show
// to API callers.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams selects a page of a listing. The zero value means "everything".
type ListParams struct {
	Page  int
	Limit int
}

// Paginated reports whether the caller asked for a page at all.
func (p ListParams) Paginated() bool {
	return p.Page > 0 || p.Limit > 0
}

// Window returns LIMIT and OFFSET, applying page 1 / limit 10 defaults.
func (p ListParams) Window() (limit, offset int) {
	page, limit := p.Page, p.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return limit, (page - 1) * limit
}
