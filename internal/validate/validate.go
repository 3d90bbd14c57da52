// Package validate holds the pure form-validation rules shared by every
// entity screen. Rules never touch the network and have no side effects:
// calling a validator twice on the same draft yields the same result.
package validate

import (
	"regexp"
	"strings"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Suffix match is case-sensitive: ".JPG" is rejected.
	imagePattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|webp|gif|bmp)$`)
)

const minPasswordLen = 8

// Errors maps a field name to its error message. An absent key means the
// field is valid; an empty map means the whole draft is valid.
type Errors map[string]string

// Valid reports whether the draft passed every rule.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidEmail reports whether s has the shape local@domain.tld.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidImageURL reports whether s is an http(s) URL ending in a known image
// extension.
func ValidImageURL(s string) bool { return imagePattern.MatchString(s) }

// Book checks a book draft. All rules are evaluated; every violated field is
// reported together.
func Book(b domain.Book) Errors {
	errs := Errors{}
	if strings.TrimSpace(b.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(b.Author) == "" {
		errs["author"] = "Author is required"
	}
	if strings.TrimSpace(b.Category) == "" {
		errs["category"] = "Category is required"
	}
	if b.Quantity <= 0 {
		errs["quantity"] = "Quantity must be a positive number"
	}
	image := strings.TrimSpace(b.Image)
	if image == "" {
		errs["image"] = "Image URL is required"
	} else if !ValidImageURL(image) {
		errs["image"] = "Enter a valid image URL"
	}
	return errs
}

// LibrarianDraft checks a new-librarian form, password included.
func LibrarianDraft(d domain.LibrarianDraft) Errors {
	errs := Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Full name is required."
	}
	checkEmail(errs, d.Email)
	checkPassword(errs, d.Password)
	return errs
}

// LibrarianUpdate checks the update form, which carries no password.
func LibrarianUpdate(u domain.LibrarianUpdate) Errors {
	errs := Errors{}
	if strings.TrimSpace(u.FullName) == "" {
		errs["name"] = "Full name is required."
	}
	checkEmail(errs, u.Email)
	return errs
}

// AdminDraft checks a new-admin form.
func AdminDraft(d domain.AdminDraft) Errors {
	errs := Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required."
	}
	checkEmail(errs, d.Email)
	checkPassword(errs, d.Password)
	return errs
}

// ProfileDraft checks the profile update form.
func ProfileDraft(d domain.ProfileDraft) Errors {
	errs := Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required."
	}
	checkEmail(errs, d.Email)
	return errs
}

func checkEmail(errs Errors, email string) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required."
	} else if !ValidEmail(email) {
		errs["email"] = "Invalid email format."
	}
}

func checkPassword(errs Errors, password string) {
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password is required."
	} else if len(password) < minPasswordLen {
		errs["password"] = "Password must be at least 8 characters."
	}
}
