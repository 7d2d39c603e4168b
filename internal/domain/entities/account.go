package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a brokerage client company.
//
// Storage model:
//   - PK: id
//   - Unique: name (natural dedupe key used by quote ingestion)
//
// Accounts are never deleted by the quote core.

type Account struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Industry      string              `json:"industry,omitempty"`
	Address       string              `json:"address,omitempty"`
	AnnualRevenue decimal.NullDecimal `json:"annual_revenue,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
