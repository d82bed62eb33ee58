// Package models defines the records managed by libreserve: library users,
// books, and the reservations linking them.
package models

// User is a library member. Document is the identity-document number used as
// the external lookup key ("find reservations by person").
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}
