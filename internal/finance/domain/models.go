package domain

import (
	"time"

	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

// PlatformBreakdown is the per-platform slice of a summary. Only platforms
// with at least one sale in the requested range appear, in first-appearance
// order of the filtered sales.
type PlatformBreakdown struct {
	Platform storedomain.Platform `json:"platform"`
	Income   float64              `json:"income"`
	Expenses float64              `json:"expenses"`
	Balance  float64              `json:"balance"`
}

// TrendPoint is one calendar month of income and expenses computed over the
// full collections, not the requested range.
type TrendPoint struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type Summary struct {
	Income            float64             `json:"income"`
	Expenses          float64             `json:"expenses"`
	Balance           float64             `json:"balance"`
	PlatformBreakdown []PlatformBreakdown `json:"platformBreakdown"`

	ActiveAccounts   int          `json:"activeAccounts"`
	TotalCustomers   int          `json:"totalCustomers"`
	ExpiringAccounts int          `json:"expiringAccounts"`
	TotalSales       int          `json:"totalSales"`
	TotalPayments    int          `json:"totalPayments"`
	Trends           []TrendPoint `json:"trends"`
}

type Service interface {
	// GetSummary aggregates sales and recharges whose payment date lies in
	// the inclusive [start, end] range, plus whole-collection dashboard
	// counters and trends.
	GetSummary(start, end time.Time) Summary
}
