package domain

import "time"

// Per-entity update structs replace the original's dynamic partial merges:
// a nil field is left untouched, a non-nil field overwrites. CreatedAt and
// IDs are immutable and therefore absent here.

type CustomerUpdate struct {
	Name    *string
	Phone   *string
	Email   *string
	Country *string
	Comment *string
	Status  *CustomerStatus
}

func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Country != nil {
		c.Country = *u.Country
	}
	if u.Comment != nil {
		c.Comment = *u.Comment
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
}

type ProviderUpdate struct {
	Name    *string
	Contact *string
}

func (u ProviderUpdate) Apply(p *Provider) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Contact != nil {
		p.Contact = *u.Contact
	}
}

type AccountUpdate struct {
	ProviderID      *string
	ProviderName    *string
	ProviderContact *string
	Platform        *Platform
	Email           *string
	Password        *string
	Profiles        *int
	Cost            *float64
	PaymentDate     *time.Time
	DaysAvailable   *int
	NextPaymentDate *time.Time
	Status          *AccountStatus
}

func (u AccountUpdate) Apply(a *Account) {
	if u.ProviderID != nil {
		a.ProviderID = *u.ProviderID
	}
	if u.ProviderName != nil {
		a.ProviderName = *u.ProviderName
	}
	if u.ProviderContact != nil {
		a.ProviderContact = *u.ProviderContact
	}
	if u.Platform != nil {
		a.Platform = *u.Platform
	}
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Password != nil {
		a.Password = *u.Password
	}
	if u.Profiles != nil {
		a.Profiles = *u.Profiles
	}
	if u.Cost != nil {
		a.Cost = *u.Cost
	}
	if u.PaymentDate != nil {
		a.PaymentDate = *u.PaymentDate
	}
	if u.DaysAvailable != nil {
		a.DaysAvailable = *u.DaysAvailable
	}
	if u.NextPaymentDate != nil {
		a.NextPaymentDate = *u.NextPaymentDate
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
}

// SaleUpdate never touches RenewalHistory; renewals go through RenewSale.
type SaleUpdate struct {
	Type            *SaleType
	CustomerID      *string
	CustomerName    *string
	CustomerContact *string
	AccountID       *string
	Platform        *Platform
	Price           *float64
	PaymentDate     *time.Time
	ExpiryDate      *time.Time
	Days            *int
	ProfileName     *string
	ProfilePin      *string
	PaymentMethod   *string
	Status          *SaleStatus
}

func (u SaleUpdate) Apply(s *Sale) {
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.CustomerID != nil {
		s.CustomerID = *u.CustomerID
	}
	if u.CustomerName != nil {
		s.CustomerName = *u.CustomerName
	}
	if u.CustomerContact != nil {
		s.CustomerContact = *u.CustomerContact
	}
	if u.AccountID != nil {
		s.AccountID = *u.AccountID
	}
	if u.Platform != nil {
		s.Platform = *u.Platform
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.PaymentDate != nil {
		s.PaymentDate = *u.PaymentDate
	}
	if u.ExpiryDate != nil {
		s.ExpiryDate = *u.ExpiryDate
	}
	if u.Days != nil {
		s.Days = *u.Days
	}
	if u.ProfileName != nil {
		s.ProfileName = *u.ProfileName
	}
	if u.ProfilePin != nil {
		s.ProfilePin = *u.ProfilePin
	}
	if u.PaymentMethod != nil {
		s.PaymentMethod = *u.PaymentMethod
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
}

type RechargeUpdate struct {
	CustomerID      *string
	CustomerName    *string
	CustomerContact *string
	ProviderID      *string
	ProviderName    *string
	Cost            *float64
	Price           *float64
	PaymentDate     *time.Time
	Details         *string
}

func (u RechargeUpdate) Apply(r *Recharge) {
	if u.CustomerID != nil {
		r.CustomerID = *u.CustomerID
	}
	if u.CustomerName != nil {
		r.CustomerName = *u.CustomerName
	}
	if u.CustomerContact != nil {
		r.CustomerContact = *u.CustomerContact
	}
	if u.ProviderID != nil {
		r.ProviderID = *u.ProviderID
	}
	if u.ProviderName != nil {
		r.ProviderName = *u.ProviderName
	}
	if u.Cost != nil {
		r.Cost = *u.Cost
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.PaymentDate != nil {
		r.PaymentDate = *u.PaymentDate
	}
	if u.Details != nil {
		r.Details = *u.Details
	}
}

type ProfileUpdate struct {
	Name           *string
	CustomerID     *string
	AccountID      *string
	ProviderID     *string
	Benefits       *string
	ExpirationDate *time.Time
}

func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.CustomerID != nil {
		p.CustomerID = *u.CustomerID
	}
	if u.AccountID != nil {
		p.AccountID = *u.AccountID
	}
	if u.ProviderID != nil {
		p.ProviderID = *u.ProviderID
	}
	if u.Benefits != nil {
		p.Benefits = *u.Benefits
	}
	if u.ExpirationDate != nil {
		p.ExpirationDate = *u.ExpirationDate
	}
}

type PaymentUpdate struct {
	CustomerID *string
	Amount     *float64
	Method     *string
	Date       *time.Time
}

func (u PaymentUpdate) Apply(p *Payment) {
	if u.CustomerID != nil {
		p.CustomerID = *u.CustomerID
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.Method != nil {
		p.Method = *u.Method
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
}
