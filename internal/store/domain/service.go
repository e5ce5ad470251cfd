package domain

import (
	"context"
	"time"
)

// Input structs carry every caller-supplied field for a new record. IDs,
// CreatedAt, sale status and renewal history are generated by the store.

type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Country string
	Comment string
	Status  CustomerStatus
}

type ProviderInput struct {
	Name    string
	Contact string
}

type AccountInput struct {
	ProviderID      string
	ProviderName    string
	ProviderContact string
	Platform        Platform
	Email           string
	Password        string
	Profiles        int
	Cost            float64
	PaymentDate     time.Time
	DaysAvailable   int
	NextPaymentDate time.Time
	Status          AccountStatus
}

type SaleInput struct {
	Type            SaleType
	CustomerID      string
	CustomerName    string
	CustomerContact string
	AccountID       string
	Platform        Platform
	Price           float64
	PaymentDate     time.Time
	ExpiryDate      time.Time
	Days            int
	ProfileName     string
	ProfilePin      string
	PaymentMethod   string
}

type RenewalInput struct {
	Amount          float64
	PaymentMethod   string
	PaymentDate     time.Time
	Days            int
	NextPaymentDate time.Time
}

type RechargeInput struct {
	CustomerID      string
	CustomerName    string
	CustomerContact string
	ProviderID      string
	ProviderName    string
	Cost            float64
	Price           float64
	PaymentDate     time.Time
	Details         string
}

type ProfileInput struct {
	Name           string
	CustomerID     string
	AccountID      string
	ProviderID     string
	Benefits       string
	ExpirationDate time.Time
}

type PaymentInput struct {
	CustomerID string
	Amount     float64
	Method     string
	Date       time.Time
}

// Service is the domain store's operation contract. Mutations persist every
// collection before returning; an error means the durable mirror could not
// be written. Update, delete, cancel and renew against an unknown id are
// silent no-ops, never errors. Reads are pure: they take no context, touch
// no persistence and return copies in insertion order.
//
// Caller contracts the store does not check: AddSale's AccountID must refer
// to an existing available account, and deleting an account or provider
// still referenced elsewhere leaves the reference dangling.
type Service interface {
	// Customers
	AddCustomer(ctx context.Context, in CustomerInput) (Customer, error)
	UpdateCustomer(ctx context.Context, id string, upd CustomerUpdate) error
	DeleteCustomer(ctx context.Context, id string) error
	GetCustomerByID(id string) (Customer, bool)
	ListCustomers() []Customer

	// Providers
	AddProvider(ctx context.Context, in ProviderInput) (Provider, error)
	UpdateProvider(ctx context.Context, id string, upd ProviderUpdate) error
	DeleteProvider(ctx context.Context, id string) error
	GetProviderByID(id string) (Provider, bool)
	ListProviders() []Provider

	// Accounts
	AddAccount(ctx context.Context, in AccountInput) (Account, error)
	UpdateAccount(ctx context.Context, id string, upd AccountUpdate) error
	DeleteAccount(ctx context.Context, id string) error
	GetAccountByID(id string) (Account, bool)
	ListAccounts() []Account
	GetAvailableAccounts(platform Platform) []Account

	// Sales
	AddSale(ctx context.Context, in SaleInput) (Sale, error)
	UpdateSale(ctx context.Context, id string, upd SaleUpdate) error
	CancelSale(ctx context.Context, id string) error
	RenewSale(ctx context.Context, saleID string, in RenewalInput) error
	GetSaleByID(id string) (Sale, bool)
	ListSales() []Sale
	GetSalesByCustomerID(customerID string) []Sale
	GetSalesByAccountID(accountID string) []Sale
	GetSalesExpiringOn(date time.Time) []Sale

	// Recharges
	AddRecharge(ctx context.Context, in RechargeInput) (Recharge, error)
	UpdateRecharge(ctx context.Context, id string, upd RechargeUpdate) error
	DeleteRecharge(ctx context.Context, id string) error
	GetRechargeByID(id string) (Recharge, bool)
	ListRecharges() []Recharge
	GetRechargesByCustomerID(customerID string) []Recharge

	// Profiles
	AddProfile(ctx context.Context, in ProfileInput) (Profile, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error
	DeleteProfile(ctx context.Context, id string) error
	GetProfileByID(id string) (Profile, bool)
	ListProfiles() []Profile

	// Payments
	AddPayment(ctx context.Context, in PaymentInput) (Payment, error)
	UpdatePayment(ctx context.Context, id string, upd PaymentUpdate) error
	DeletePayment(ctx context.Context, id string) error
	GetPaymentByID(id string) (Payment, bool)
	ListPayments() []Payment
}
