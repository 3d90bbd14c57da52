package validate

import (
	"testing"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() domain.Book {
	return domain.Book{
		Name:     "The Go Programming Language",
		Author:   "Donovan & Kernighan",
		Category: "Technology",
		Quantity: 3,
		Image:    "https://example.com/cover.jpg",
	}
}

func TestBook_Valid(t *testing.T) {
	errs := Book(validBook())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestBook_ReportsAllViolationsTogether(t *testing.T) {
	errs := Book(domain.Book{Quantity: 0})
	require.False(t, errs.Valid())

	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Author is required", errs["author"])
	assert.Equal(t, "Category is required", errs["category"])
	assert.Equal(t, "Quantity must be a positive number", errs["quantity"])
	assert.Equal(t, "Image URL is required", errs["image"])
}

func TestBook_QuantityMustBePositive(t *testing.T) {
	b := validBook()
	b.Quantity = -2
	errs := Book(b)
	assert.Equal(t, "Quantity must be a positive number", errs["quantity"])
}

func TestBook_ImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantMsg string
	}{
		{"https jpg", "https://cdn.example.com/a.jpg", ""},
		{"http png", "http://example.com/covers/b.png", ""},
		{"webp", "https://example.com/c.webp", ""},
		{"uppercase extension rejected", "https://example.com/d.JPG", "Enter a valid image URL"},
		{"missing extension", "https://example.com/cover", "Enter a valid image URL"},
		{"not a url", "cover.jpg", "Enter a valid image URL"},
		{"blank", "   ", "Image URL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			b.Image = tt.url
			errs := Book(b)
			assert.Equal(t, tt.wantMsg, errs["image"])
		})
	}
}

func TestBook_Pure(t *testing.T) {
	draft := domain.Book{Name: "x"}
	first := Book(draft)
	second := Book(draft)
	assert.Equal(t, first, second)
}

func TestLibrarianDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.LibrarianDraft
		want  Errors
	}{
		{
			name:  "valid",
			draft: domain.LibrarianDraft{Name: "Jo Reader", Email: "jo@example.com", Password: "supersecret"},
			want:  Errors{},
		},
		{
			name:  "all empty",
			draft: domain.LibrarianDraft{},
			want: Errors{
				"name":     "Full name is required.",
				"email":    "Email is required.",
				"password": "Password is required.",
			},
		},
		{
			name:  "bad email and short password",
			draft: domain.LibrarianDraft{Name: "Jo", Email: "not-an-email", Password: "short"},
			want: Errors{
				"email":    "Invalid email format.",
				"password": "Password must be at least 8 characters.",
			},
		},
		{
			name:  "exactly eight characters passes",
			draft: domain.LibrarianDraft{Name: "Jo", Email: "jo@example.com", Password: "12345678"},
			want:  Errors{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LibrarianDraft(tt.draft))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.True(t, ValidEmail("first.last+tag@sub.domain.org"))
	assert.False(t, ValidEmail("a b@c.co"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("@b.co"))
}

func TestProfileDraft(t *testing.T) {
	errs := ProfileDraft(domain.ProfileDraft{})
	assert.Equal(t, "Name is required.", errs["name"])
	assert.Equal(t, "Email is required.", errs["email"])

	errs = ProfileDraft(domain.ProfileDraft{Name: "Admin", Email: "admin@lib.io"})
	assert.True(t, errs.Valid())
}

func TestAdminDraft(t *testing.T) {
	errs := AdminDraft(domain.AdminDraft{Name: " ", Email: "x@y.z", Password: "longenough"})
	assert.Equal(t, Errors{"name": "Name is required."}, errs)
}
