package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

// ListUsers returns all reader accounts. The server answers 404 when no
// users exist yet; that is an empty collection, not an error.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON(ctx, "/admin/users", &users); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return []domain.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

// ListBorrowedBooks returns the currently outstanding borrow records.
func (c *Client) ListBorrowedBooks(ctx context.Context) ([]domain.BorrowRecord, error) {
	var records []domain.BorrowRecord
	if err := c.getJSON(ctx, "/admin/BorrowedBooks", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListReturnedBooks returns the completed borrow records.
func (c *Client) ListReturnedBooks(ctx context.Context) ([]domain.BorrowRecord, error) {
	var records []domain.BorrowRecord
	if err := c.getJSON(ctx, "/admin/Returned-Books", &records); err != nil {
		return nil, err
	}
	return records, nil
}
