package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item. It carries no invariants beyond existence.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
