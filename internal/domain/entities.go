package domain

import "time"

// Book is a catalog entry. AvailabilityStatus is derived from Quantity at the
// serialization boundary and never maintained by hand.
type Book struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Author             string `json:"author"`
	Quantity           int    `json:"quantity"`
	AvailabilityStatus bool   `json:"availabilityStatus"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	Category           string `json:"category"`
}

func (b Book) EntityID() int { return b.ID }

// Available reports the availability derived from the current quantity.
func (b Book) Available() bool { return b.Quantity > 0 }

// StatusLabel returns the display label used on book cards.
func (b Book) StatusLabel() string {
	if b.AvailabilityStatus {
		return "Available"
	}
	return "Unavailable"
}

// Categories lists the fixed set of book categories offered by the catalog.
var Categories = []string{
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Mystery",
	"Romance",
	"Thriller",
	"Biography",
	"History",
	"Science",
	"Technology",
	"Philosophy",
	"Poetry",
	"Drama",
	"Comics",
	"Children's Books",
	"Educational",
	"Self-Help",
	"Business",
	"Art",
	"Cookbooks",
}

// Librarian is a staff account. Unapproved librarians sit in the pending
// queue until an admin approves or rejects them.
type Librarian struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsApproved bool   `json:"isApproved"`
}

func (l Librarian) EntityID() int { return l.ID }

// ApprovedLibrarians filters a roster to accounts that completed approval.
// The roster endpoint returns unapproved records too.
func ApprovedLibrarians(libs []Librarian) []Librarian {
	approved := make([]Librarian, 0, len(libs))
	for _, l := range libs {
		if l.IsApproved {
			approved = append(approved, l)
		}
	}
	return approved
}

// LibrarianDraft is the create payload for a new librarian account.
type LibrarianDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LibrarianUpdate is the update payload. The server expects "FullName"
// rather than "name" on this one endpoint.
type LibrarianUpdate struct {
	FullName string `json:"FullName"`
	Email    string `json:"email"`
}

// User is a reader account. The admin API exposes users read-only.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) EntityID() int { return u.ID }

// BorrowRecord links a user to a borrowed book. Dates arrive as server
// strings and may be empty (a missing ReturnDate means not returned yet).
type BorrowRecord struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userId"`
	BookID       int    `json:"bookId"`
	BorrowDate   string `json:"borrowDate"`
	BorrowedDate string `json:"borrowedDate"`
	DueDate      string `json:"dueDate"`
	ReturnDate   string `json:"returnDate"`
}

func (r BorrowRecord) EntityID() int { return r.ID }

// Returned reports whether the book has been handed back.
func (r BorrowRecord) Returned() bool { return r.ReturnDate != "" }

// Admin is the profile of an administrator account.
type Admin struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminDraft is the create payload for a new admin. Field casing follows the
// server contract.
type AdminDraft struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// ProfileDraft is the update payload for the signed-in admin's profile.
type ProfileDraft struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

// FormatDate renders a server date string for display. Unparseable or empty
// values fall back to the provided placeholder.
func FormatDate(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}
