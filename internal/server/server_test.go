package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/streamrent/streamrent/internal/clock"
	"github.com/streamrent/streamrent/internal/config"
	financeservice "github.com/streamrent/streamrent/internal/finance/service"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
	storeservice "github.com/streamrent/streamrent/internal/store/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

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

type testHarness struct {
	router *gin.Engine
	store  storedomain.Service
	token  string
}

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct horse"
)

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		AdminUser:         testAdminUser,
		AdminPasswordHash: string(hash),
		SessionTTLMinutes: 60,
	}

	clk := clock.NewFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	store := storeservice.New(storeservice.Params{
		Log:   zap.NewNop(),
		KV:    newMemKV(),
		Clock: clk,
	})
	require.NoError(t, store.Load(context.Background()))

	dashboard, err := config.NewStaticDashboardConfigHolder(config.DefaultDashboardConfig())
	require.NoError(t, err)

	finance := financeservice.New(financeservice.Params{
		Log:       zap.NewNop(),
		Store:     store,
		Clock:     clk,
		Dashboard: dashboard,
	})

	srv := NewServer(ServerParams{
		Log:     zap.NewNop(),
		Cfg:     cfg,
		Store:   store,
		Finance: finance,
	})

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	srv.RegisterRoutes(r)

	return &testHarness{router: r, store: store}
}

func (h *testHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *testHarness) login(t *testing.T) {
	t.Helper()
	w := h.do(t, http.MethodPost, "/auth/login", gin.H{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	h.token = resp.Data.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/auth/login", gin.H{
		"username": testAdminUser,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodPost, "/auth/login", gin.H{
		"username": "someone-else",
		"password": testAdminPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIRequiresSession(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/customers", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	h.login(t)
	w = h.do(t, http.MethodGet, "/api/v1/customers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerCRUDOverHTTP(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	w := h.do(t, http.MethodPost, "/api/v1/customers", gin.H{
		"name":    "Maria",
		"phone":   "+57 311 111 1111",
		"country": "CO",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data storedomain.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	assert.Equal(t, storedomain.CustomerActive, created.Data.Status)

	w = h.do(t, http.MethodPatch, "/api/v1/customers/"+created.Data.ID, gin.H{
		"phone": "+57 322 222 2222",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/customers/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data storedomain.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Maria", fetched.Data.Name)
	assert.Equal(t, "+57 322 222 2222", fetched.Data.Phone)

	w = h.do(t, http.MethodDelete, "/api/v1/customers/"+created.Data.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/customers/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaleLifecycleOverHTTP(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	w := h.do(t, http.MethodPost, "/api/v1/accounts", gin.H{
		"providerId": "prov-1",
		"platform":   "Netflix",
		"email":      "acc@example.com",
		"cost":       3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var account struct {
		Data storedomain.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, storedomain.AccountAvailable, account.Data.Status)

	w = h.do(t, http.MethodPost, "/api/v1/sales", gin.H{
		"type":          "full",
		"customerId":    "cust-1",
		"accountId":     account.Data.ID,
		"platform":      "Netflix",
		"price":         10,
		"paymentDate":   "2024-06-15T12:00:00Z",
		"expiryDate":    "2024-07-15T12:00:00Z",
		"days":          30,
		"paymentMethod": "Transfer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sale struct {
		Data storedomain.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, storedomain.SaleActive, sale.Data.Status)

	// The linked account is rented while the sale is active.
	got, ok := h.store.GetAccountByID(account.Data.ID)
	require.True(t, ok)
	assert.Equal(t, storedomain.AccountRented, got.Status)

	w = h.do(t, http.MethodGet, "/api/v1/sales/expiring?date=2024-07-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var expiring struct {
		Data []storedomain.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &expiring))
	require.Len(t, expiring.Data, 1)
	assert.Equal(t, sale.Data.ID, expiring.Data[0].ID)

	w = h.do(t, http.MethodGet, "/api/v1/sales/expiring?date=07/15/2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/sales/"+sale.Data.ID+"/renewals", gin.H{
		"amount":          10,
		"paymentMethod":   "Cash",
		"paymentDate":     "2024-07-15T12:00:00Z",
		"days":            30,
		"nextPaymentDate": "2024-08-15T12:00:00Z",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	renewed, ok := h.store.GetSaleByID(sale.Data.ID)
	require.True(t, ok)
	require.Len(t, renewed.RenewalHistory, 1)
	assert.Equal(t, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC), renewed.ExpiryDate)

	w = h.do(t, http.MethodPost, "/api/v1/sales/"+sale.Data.ID+"/cancel", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	cancelled, ok := h.store.GetSaleByID(sale.Data.ID)
	require.True(t, ok)
	assert.Equal(t, storedomain.SaleCancelled, cancelled.Status)
	got, _ = h.store.GetAccountByID(account.Data.ID)
	assert.Equal(t, storedomain.AccountAvailable, got.Status)
}

func TestFinanceSummaryEndpoint(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	account, err := h.store.AddAccount(context.Background(), storedomain.AccountInput{
		ProviderID: "prov-1",
		Platform:   storedomain.PlatformNetflix,
		Cost:       3,
		Status:     storedomain.AccountAvailable,
	})
	require.NoError(t, err)

	_, err = h.store.AddSale(context.Background(), storedomain.SaleInput{
		Type:        storedomain.SaleFull,
		CustomerID:  "cust-1",
		AccountID:   account.ID,
		Platform:    storedomain.PlatformNetflix,
		Price:       10,
		PaymentDate: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		ExpiryDate:  time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC),
		Days:        30,
	})
	require.NoError(t, err)

	w := h.do(t, http.MethodGet, "/api/v1/finance/summary?start=2024-06-01&end=2024-06-10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Income   float64 `json:"income"`
			Expenses float64 `json:"expenses"`
			Balance  float64 `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(10), resp.Data.Income)
	assert.Equal(t, float64(3), resp.Data.Expenses)
	assert.Equal(t, float64(7), resp.Data.Balance)

	w = h.do(t, http.MethodGet, "/api/v1/finance/summary?start=bad&end=2024-06-10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownIDsReturn404OnReadsAndNoOpOnWrites(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	for _, path := range []string{
		"/api/v1/customers/missing",
		"/api/v1/providers/missing",
		"/api/v1/accounts/missing",
		"/api/v1/sales/missing",
		"/api/v1/recharges/missing",
		"/api/v1/profiles/missing",
		"/api/v1/payments/missing",
	} {
		w := h.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w := h.do(t, http.MethodPatch, "/api/v1/customers/missing", gin.H{"name": "x"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(t, http.MethodDelete, "/api/v1/customers/missing", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(t, http.MethodPost, "/api/v1/sales/missing/cancel", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: h.token})
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	resp := h.do(t, http.MethodGet, "/api/v1/customers", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestListAvailableAccountsFilter(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	for _, platform := range []string{"Netflix", "Max"} {
		w := h.do(t, http.MethodPost, "/api/v1/accounts", gin.H{
			"providerId": "prov-1",
			"platform":   platform,
			"email":      fmt.Sprintf("%s@example.com", platform),
			"cost":       3,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := h.do(t, http.MethodGet, "/api/v1/accounts/available?platform=Netflix", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []storedomain.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, storedomain.PlatformNetflix, resp.Data[0].Platform)
}
