package service

import (
	"context"
	"testing"
	"time"

	"github.com/streamrent/streamrent/internal/clock"
	"github.com/streamrent/streamrent/internal/store/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memKV is an in-memory persistence backend for tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memKV) SetAll(_ context.Context, values map[string][]byte) error {
	for key, value := range values {
		m.data[key] = value
	}
	return nil
}

func newTestStore(t *testing.T) (*Store, *memKV, *clock.FakeClock) {
	t.Helper()
	kv := newMemKV()
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	s := New(Params{
		Log:   zap.NewNop(),
		KV:    kv,
		Clock: clk,
	})
	require.NoError(t, s.Load(context.Background()))
	return s, kv, clk
}

func seedAccount(t *testing.T, s *Store, platform domain.Platform, cost float64) domain.Account {
	t.Helper()
	account, err := s.AddAccount(context.Background(), domain.AccountInput{
		ProviderID:      "prov-1",
		ProviderName:    "StreamSupply",
		ProviderContact: "+57 300 000 0000",
		Platform:        platform,
		Email:           "acc@example.com",
		Password:        "secret",
		Profiles:        5,
		Cost:            cost,
		Status:          domain.AccountAvailable,
	})
	require.NoError(t, err)
	return account
}

func seedSale(t *testing.T, s *Store, accountID string, platform domain.Platform, price float64, paymentDate, expiryDate time.Time) domain.Sale {
	t.Helper()
	sale, err := s.AddSale(context.Background(), domain.SaleInput{
		Type:            domain.SaleFull,
		CustomerID:      "cust-1",
		CustomerName:    "Maria",
		CustomerContact: "+57 311 111 1111",
		AccountID:       accountID,
		Platform:        platform,
		Price:           price,
		PaymentDate:     paymentDate,
		ExpiryDate:      expiryDate,
		Days:            30,
		PaymentMethod:   "Transfer",
	})
	require.NoError(t, err)
	return sale
}

func TestAddSaleMarksAccountRented(t *testing.T) {
	s, _, clk := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformNetflix, 3)

	sale := seedSale(t, s, account.ID, domain.PlatformNetflix, 10, clk.Now(), clk.Now().AddDate(0, 1, 0))

	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, domain.SaleActive, sale.Status)
	assert.Empty(t, sale.RenewalHistory)

	got, ok := s.GetAccountByID(account.ID)
	require.True(t, ok)
	assert.Equal(t, domain.AccountRented, got.Status)
}

func TestCancelSaleReleasesAccountAndIsIdempotent(t *testing.T) {
	s, _, clk := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformNetflix, 3)
	sale := seedSale(t, s, account.ID, domain.PlatformNetflix, 10, clk.Now(), clk.Now().AddDate(0, 1, 0))

	require.NoError(t, s.CancelSale(context.Background(), sale.ID))

	got, ok := s.GetSaleByID(sale.ID)
	require.True(t, ok)
	assert.Equal(t, domain.SaleCancelled, got.Status)

	acc, ok := s.GetAccountByID(account.ID)
	require.True(t, ok)
	assert.Equal(t, domain.AccountAvailable, acc.Status)

	// Second cancel re-runs the same terminal writes.
	require.NoError(t, s.CancelSale(context.Background(), sale.ID))
	again, ok := s.GetSaleByID(sale.ID)
	require.True(t, ok)
	assert.Equal(t, got, again)

	acc, _ = s.GetAccountByID(account.ID)
	assert.Equal(t, domain.AccountAvailable, acc.Status)
}

func TestCancelSaleUnknownIDIsNoOp(t *testing.T) {
	s, _, clk := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformNetflix, 3)
	seedSale(t, s, account.ID, domain.PlatformNetflix, 10, clk.Now(), clk.Now())

	before := s.ListSales()
	require.NoError(t, s.CancelSale(context.Background(), "missing-id"))
	assert.Equal(t, before, s.ListSales())
}

func TestRenewSaleAppendsHistoryAndExtendsExpiry(t *testing.T) {
	s, _, clk := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformMax, 5)
	firstExpiry := clk.Now().AddDate(0, 1, 0)
	sale := seedSale(t, s, account.ID, domain.PlatformMax, 20, clk.Now(), firstExpiry)

	renewedUntil := firstExpiry.AddDate(0, 1, 0)
	require.NoError(t, s.RenewSale(context.Background(), sale.ID, domain.RenewalInput{
		Amount:          20,
		PaymentMethod:   "Cash",
		PaymentDate:     firstExpiry,
		Days:            30,
		NextPaymentDate: renewedUntil,
	}))

	got, ok := s.GetSaleByID(sale.ID)
	require.True(t, ok)
	require.Len(t, got.RenewalHistory, 1)
	first := got.RenewalHistory[0]
	assert.Equal(t, sale.ID, first.SaleID)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, renewedUntil, got.ExpiryDate)
	// Renewal never changes sale or account status.
	assert.Equal(t, domain.SaleActive, got.Status)
	acc, _ := s.GetAccountByID(account.ID)
	assert.Equal(t, domain.AccountRented, acc.Status)

	// A second renewal preserves the first entry untouched, in order.
	finalExpiry := renewedUntil.AddDate(0, 1, 0)
	require.NoError(t, s.RenewSale(context.Background(), sale.ID, domain.RenewalInput{
		Amount:          20,
		PaymentMethod:   "Cash",
		PaymentDate:     renewedUntil,
		Days:            30,
		NextPaymentDate: finalExpiry,
	}))

	got, _ = s.GetSaleByID(sale.ID)
	require.Len(t, got.RenewalHistory, 2)
	assert.Equal(t, first, got.RenewalHistory[0])
	assert.Equal(t, finalExpiry, got.ExpiryDate)

	require.NoError(t, s.RenewSale(context.Background(), "missing-id", domain.RenewalInput{}))
	got, _ = s.GetSaleByID(sale.ID)
	assert.Len(t, got.RenewalHistory, 2)
}

func TestGetSalesExpiringOnMatchesExactDay(t *testing.T) {
	s, _, _ := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformNetflix, 3)

	expiry := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	sale := seedSale(t, s, account.ID, domain.PlatformNetflix, 10, expiry.AddDate(0, -1, 0), expiry)

	sameDay := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	expiring := s.GetSalesExpiringOn(sameDay)
	require.Len(t, expiring, 1)
	assert.Equal(t, sale.ID, expiring[0].ID)

	assert.Empty(t, s.GetSalesExpiringOn(nextDay))

	// Cancelled sales never match, even on the right day.
	require.NoError(t, s.CancelSale(context.Background(), sale.ID))
	assert.Empty(t, s.GetSalesExpiringOn(sameDay))
}

func TestGetSalesByCustomerAndAccount(t *testing.T) {
	s, _, clk := newTestStore(t)
	a1 := seedAccount(t, s, domain.PlatformNetflix, 3)
	a2 := seedAccount(t, s, domain.PlatformMax, 5)

	s1 := seedSale(t, s, a1.ID, domain.PlatformNetflix, 10, clk.Now(), clk.Now())
	s2 := seedSale(t, s, a2.ID, domain.PlatformMax, 20, clk.Now(), clk.Now())

	byCustomer := s.GetSalesByCustomerID("cust-1")
	require.Len(t, byCustomer, 2)
	assert.Equal(t, s1.ID, byCustomer[0].ID)
	assert.Equal(t, s2.ID, byCustomer[1].ID)

	byAccount := s.GetSalesByAccountID(a2.ID)
	require.Len(t, byAccount, 1)
	assert.Equal(t, s2.ID, byAccount[0].ID)

	assert.Empty(t, s.GetSalesByAccountID("missing"))
}

func TestSaleKeepsCustomerSnapshotAfterCustomerChanges(t *testing.T) {
	s, _, clk := newTestStore(t)
	account := seedAccount(t, s, domain.PlatformNetflix, 3)

	customer, err := s.AddCustomer(context.Background(), domain.CustomerInput{
		Name:   "Maria",
		Phone:  "+57 311 111 1111",
		Status: domain.CustomerActive,
	})
	require.NoError(t, err)

	sale, err := s.AddSale(context.Background(), domain.SaleInput{
		Type:            domain.SaleFull,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerContact: customer.Phone,
		AccountID:       account.ID,
		Platform:        domain.PlatformNetflix,
		Price:           10,
		PaymentDate:     clk.Now(),
		ExpiryDate:      clk.Now().AddDate(0, 1, 0),
		Days:            30,
		PaymentMethod:   "Transfer",
	})
	require.NoError(t, err)

	newName := "Maria Fernanda"
	require.NoError(t, s.UpdateCustomer(context.Background(), customer.ID, domain.CustomerUpdate{Name: &newName}))
	require.NoError(t, s.DeleteCustomer(context.Background(), customer.ID))

	got, ok := s.GetSaleByID(sale.ID)
	require.True(t, ok)
	assert.Equal(t, "Maria", got.CustomerName)
	assert.Equal(t, "+57 311 111 1111", got.CustomerContact)
}
