package models

import "time"

// Purchase is a dated financial line item owned by exactly one person
// record. Date uses the yyyy-mm-dd storage format, Amount is base-unit
// BRL.
type Purchase struct {
	ID          string    `json:"id"`
	PersonID    string    `json:"person_id"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Date        *string   `json:"data"`
	Description *string   `json:"descricao"`
	Amount      float64   `json:"valor"`
}

// PurchaseInput carries the mutable purchase fields for create and
// update requests.
type PurchaseInput struct {
	Date        *string `json:"data"`
	Description *string `json:"descricao"`
	Amount      float64 `json:"valor"`
}

// Normalize collapses empty strings to nil.
func (in *PurchaseInput) Normalize() {
	in.Date = trimToNil(in.Date)
	in.Description = trimToNil(in.Description)
}
