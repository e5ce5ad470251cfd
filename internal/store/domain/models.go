package domain

import "time"

// Platform identifies a streaming service offered for rent.
type Platform string

const (
	PlatformNetflix        Platform = "Netflix"
	PlatformDisney         Platform = "Disney"
	PlatformStar           Platform = "Star"
	PlatformPrimeVideo     Platform = "Prime Video"
	PlatformMax            Platform = "Max"
	PlatformMovistarTV     Platform = "Movistar TV"
	PlatformSpotify        Platform = "Spotify"
	PlatformIPTV           Platform = "IP TV"
	PlatformPlex           Platform = "Plex"
	PlatformMovistar       Platform = "Movistar"
	PlatformAppleTV        Platform = "Apple TV"
	PlatformCrunchyroll    Platform = "Crunchyroll"
	PlatformParamount      Platform = "Paramount"
	PlatformYouTubePremium Platform = "YouTube Premium"
	PlatformDirectVGo      Platform = "DirectV Go"
	PlatformVix            Platform = "Vix"
	PlatformMagisTV        Platform = "Magis TV"
	PlatformWinSports      Platform = "Win Sports"
	PlatformClaroVideo     Platform = "Claro Video"
	PlatformXboxGamePass   Platform = "Xbox Game Pass"
	PlatformPlayStation    Platform = "PlayStation"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// AccountStatus is derived: it transitions through the sale lifecycle
// (available -> rented on AddSale, back to available on CancelSale) and is
// only set directly for accounts outside an active sale.
type AccountStatus string

const (
	AccountAvailable AccountStatus = "available"
	AccountRented    AccountStatus = "rented"
	AccountInactive  AccountStatus = "inactive"
)

type SaleType string

const (
	SaleFull    SaleType = "full"
	SaleProfile SaleType = "profile"
)

// SaleStatus values. The store never sweeps active sales into expired;
// "expired" is set externally through UpdateSale.
type SaleStatus string

const (
	SaleActive    SaleStatus = "active"
	SaleExpired   SaleStatus = "expired"
	SaleCancelled SaleStatus = "cancelled"
)

type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Country   string         `json:"country"`
	Comment   string         `json:"comment,omitempty"`
	Status    CustomerStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Provider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Account is a provider-supplied streaming credential. ProviderName and
// ProviderContact are point-in-time snapshots taken at creation; renaming or
// deleting the provider later does not touch them.
type Account struct {
	ID              string        `json:"id"`
	ProviderID      string        `json:"providerId"`
	ProviderName    string        `json:"providerName"`
	ProviderContact string        `json:"providerContact"`
	Platform        Platform      `json:"platform"`
	Email           string        `json:"email"`
	Password        string        `json:"password"`
	Profiles        int           `json:"profiles"`
	Cost            float64       `json:"cost"`
	PaymentDate     time.Time     `json:"paymentDate"`
	DaysAvailable   int           `json:"daysAvailable"`
	NextPaymentDate time.Time     `json:"nextPaymentDate"`
	Status          AccountStatus `json:"status"`
}

// Renewal is immutable once created and always bound to its owning sale.
type Renewal struct {
	ID              string    `json:"id"`
	SaleID          string    `json:"saleId"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentDate     time.Time `json:"paymentDate"`
	Days            int       `json:"days"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

// Sale binds a customer to an account (or one of its profiles) for a price
// and time window. CustomerName and CustomerContact are creation-time
// snapshots. RenewalHistory is append-only and chronological.
type Sale struct {
	ID              string     `json:"id"`
	Type            SaleType   `json:"type"`
	CustomerID      string     `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	CustomerContact string     `json:"customerContact"`
	AccountID       string     `json:"accountId"`
	Platform        Platform   `json:"platform"`
	Price           float64    `json:"price"`
	PaymentDate     time.Time  `json:"paymentDate"`
	ExpiryDate      time.Time  `json:"expiryDate"`
	Days            int        `json:"days"`
	ProfileName     string     `json:"profileName,omitempty"`
	ProfilePin      string     `json:"profilePin,omitempty"`
	PaymentMethod   string     `json:"paymentMethod"`
	Status          SaleStatus `json:"status"`
	RenewalHistory  []Renewal  `json:"renewalHistory"`
}

// Recharge is a standalone income/expense event with no state-machine
// coupling to sales or accounts.
type Recharge struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	ProviderID      string    `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	Cost            float64   `json:"cost"`
	Price           float64   `json:"price"`
	PaymentDate     time.Time `json:"paymentDate"`
	Details         string    `json:"details"`
}

// Profile is a sub-allocation of an account's profile capacity. Capacity is
// not checked against Account.Profiles.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CustomerID     string    `json:"customerId"`
	AccountID      string    `json:"accountId"`
	ProviderID     string    `json:"providerId"`
	Benefits       string    `json:"benefits"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// Payment is a generic ledger entry independent of the sale lifecycle.
type Payment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Date       time.Time `json:"date"`
}
