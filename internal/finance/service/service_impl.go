package service

import (
	"fmt"
	"time"

	"github.com/streamrent/streamrent/internal/clock"
	"github.com/streamrent/streamrent/internal/config"
	"github.com/streamrent/streamrent/internal/finance/domain"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Store     storedomain.Service
	Clock     clock.Clock
	Dashboard *config.DashboardConfigHolder
}

type Service struct {
	log       *zap.Logger
	store     storedomain.Service
	clock     clock.Clock
	dashboard *config.DashboardConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("finance.service"),
		store:     p.Store,
		clock:     p.Clock,
		dashboard: p.Dashboard,
	}
}

func (s *Service) GetSummary(start, end time.Time) domain.Summary {
	sales := s.store.ListSales()
	recharges := s.store.ListRecharges()
	accounts := s.store.ListAccounts()

	accountCost := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		accountCost[a.ID] = a.Cost
	}

	inRange := func(t time.Time) bool {
		return !t.Before(start) && !t.After(end)
	}

	var income, expenses float64
	var filteredSales []storedomain.Sale
	for _, sale := range sales {
		if !inRange(sale.PaymentDate) {
			continue
		}
		filteredSales = append(filteredSales, sale)
		income += sale.Price
		expenses += accountCost[sale.AccountID] // missing account counts as 0
	}
	for _, r := range recharges {
		if !inRange(r.PaymentDate) {
			continue
		}
		income += r.Price
		expenses += r.Cost
	}

	summary := domain.Summary{
		Income:            income,
		Expenses:          expenses,
		Balance:           income - expenses,
		PlatformBreakdown: platformBreakdown(filteredSales, accountCost),
		ActiveAccounts:    countActiveAccounts(accounts),
		TotalCustomers:    len(s.store.ListCustomers()),
		ExpiringAccounts:  s.countExpiringAccounts(accounts),
		TotalSales:        len(sales),
		TotalPayments:     len(s.store.ListPayments()),
		Trends:            s.trends(sales, recharges, accountCost),
	}
	return summary
}

// platformBreakdown groups the range-filtered sales by platform, keeping
// the first-appearance order so the result is reproducible for a fixed
// collection state.
func platformBreakdown(filtered []storedomain.Sale, accountCost map[string]float64) []domain.PlatformBreakdown {
	index := make(map[storedomain.Platform]int)
	breakdown := []domain.PlatformBreakdown{}
	for _, sale := range filtered {
		i, ok := index[sale.Platform]
		if !ok {
			i = len(breakdown)
			index[sale.Platform] = i
			breakdown = append(breakdown, domain.PlatformBreakdown{Platform: sale.Platform})
		}
		breakdown[i].Income += sale.Price
		breakdown[i].Expenses += accountCost[sale.AccountID]
	}
	for i := range breakdown {
		breakdown[i].Balance = breakdown[i].Income - breakdown[i].Expenses
	}
	return breakdown
}

// countActiveAccounts counts accounts that are currently usable, i.e. any
// status other than inactive.
func countActiveAccounts(accounts []storedomain.Account) int {
	n := 0
	for _, a := range accounts {
		if a.Status != storedomain.AccountInactive {
			n++
		}
	}
	return n
}

// countExpiringAccounts counts accounts whose next payment date falls inside
// the near-term window [today, today+N days] at day granularity. N comes
// from the hot-reloadable dashboard policy (default 7).
func (s *Service) countExpiringAccounts(accounts []storedomain.Account) int {
	window := s.dashboard.Get().ExpiringWindowDays
	today := dayOf(s.clock.Now())
	limit := today.AddDate(0, 0, window)

	n := 0
	for _, a := range accounts {
		due := dayOf(a.NextPaymentDate)
		if !due.Before(today) && !due.After(limit) {
			n++
		}
	}
	return n
}

// trends builds the trailing-months income/expenses series over the full
// collections. Sale expenses are the linked account's cost, recharges carry
// their own cost, mirroring the range aggregation.
func (s *Service) trends(sales []storedomain.Sale, recharges []storedomain.Recharge, accountCost map[string]float64) []domain.TrendPoint {
	months := s.dashboard.Get().TrendMonths
	now := s.clock.Now().UTC()
	// Anchor on the first of the month so month arithmetic never skips.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]domain.TrendPoint, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := base.AddDate(0, i-(months-1), 0)
		key := fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
		points[i] = domain.TrendPoint{Month: key}
		index[key] = i
	}

	add := func(t time.Time, income, expense float64) {
		t = t.UTC()
		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		if i, ok := index[key]; ok {
			points[i].Income += income
			points[i].Expenses += expense
		}
	}

	for _, sale := range sales {
		add(sale.PaymentDate, sale.Price, accountCost[sale.AccountID])
	}
	for _, r := range recharges {
		add(r.PaymentDate, r.Price, r.Cost)
	}
	return points
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
