package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidSortField = errors.New("invalid sort field")

// Product is an owned inventory item. Owner and CreatedAt are set once at
// creation and never change.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// CanAccess reports whether the principal may read or mutate this product:
// the owner may, and an admin may regardless of ownership.
func (p *Product) CanAccess(principal Principal) bool {
	return principal.IsAdmin() || principal.Username == p.Owner
}
