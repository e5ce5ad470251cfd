package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/streamrent/streamrent/internal/store/domain"
	"go.uber.org/zap"
)

// AddSale creates the rental and flips the referenced account to rented in
// the same persisted batch. Status and renewal history are store-owned: the
// sale always starts active with an empty history. The caller is responsible
// for passing an existing, available account id.
func (s *Store) AddSale(ctx context.Context, in domain.SaleInput) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale := domain.Sale{
		ID:              uuid.NewString(),
		Type:            in.Type,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerContact: in.CustomerContact,
		AccountID:       in.AccountID,
		Platform:        in.Platform,
		Price:           in.Price,
		PaymentDate:     in.PaymentDate,
		ExpiryDate:      in.ExpiryDate,
		Days:            in.Days,
		ProfileName:     in.ProfileName,
		ProfilePin:      in.ProfilePin,
		PaymentMethod:   in.PaymentMethod,
		Status:          domain.SaleActive,
		RenewalHistory:  []domain.Renewal{},
	}

	rented := domain.AccountRented
	s.applyAccountUpdate(in.AccountID, domain.AccountUpdate{Status: &rented})

	s.sales = append(s.sales, sale)
	if err := s.persist(ctx); err != nil {
		return domain.Sale{}, err
	}

	s.log.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("account_id", sale.AccountID),
		zap.String("platform", string(sale.Platform)),
	)
	return sale, nil
}

func (s *Store) UpdateSale(ctx context.Context, id string, upd domain.SaleUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			upd.Apply(&s.sales[i])
			return s.persist(ctx)
		}
	}
	return nil
}

// CancelSale is a terminal, idempotent transition: the sale becomes
// cancelled and the linked account available again. Re-cancelling rewrites
// the same values. Unknown ids are a silent no-op.
func (s *Store) CancelSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID != id {
			continue
		}
		s.sales[i].Status = domain.SaleCancelled

		available := domain.AccountAvailable
		s.applyAccountUpdate(s.sales[i].AccountID, domain.AccountUpdate{Status: &available})

		if err := s.persist(ctx); err != nil {
			return err
		}
		s.log.Info("sale cancelled", zap.String("sale_id", id))
		return nil
	}
	return nil
}

// RenewSale appends a renewal and pushes the expiry date to the renewal's
// next payment date. Neither the sale status nor the account status change.
func (s *Store) RenewSale(ctx context.Context, saleID string, in domain.RenewalInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID != saleID {
			continue
		}

		renewal := domain.Renewal{
			ID:              ulid.Make().String(),
			SaleID:          saleID,
			Amount:          in.Amount,
			PaymentMethod:   in.PaymentMethod,
			PaymentDate:     in.PaymentDate,
			Days:            in.Days,
			NextPaymentDate: in.NextPaymentDate,
		}
		s.sales[i].ExpiryDate = in.NextPaymentDate
		s.sales[i].RenewalHistory = append(s.sales[i].RenewalHistory, renewal)

		if err := s.persist(ctx); err != nil {
			return err
		}
		s.log.Info("sale renewed",
			zap.String("sale_id", saleID),
			zap.String("renewal_id", renewal.ID),
			zap.Int("renewals", len(s.sales[i].RenewalHistory)),
		)
		return nil
	}
	return nil
}

func (s *Store) GetSaleByID(id string) (domain.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			return copySale(s.sales[i]), true
		}
	}
	return domain.Sale{}, false
}

func (s *Store) ListSales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sale, 0, len(s.sales))
	for i := range s.sales {
		out = append(out, copySale(s.sales[i]))
	}
	return out
}

func (s *Store) GetSalesByCustomerID(customerID string) []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Sale{}
	for i := range s.sales {
		if s.sales[i].CustomerID == customerID {
			out = append(out, copySale(s.sales[i]))
		}
	}
	return out
}

func (s *Store) GetSalesByAccountID(accountID string) []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Sale{}
	for i := range s.sales {
		if s.sales[i].AccountID == accountID {
			out = append(out, copySale(s.sales[i]))
		}
	}
	return out
}

// GetSalesExpiringOn matches active sales whose expiry falls on exactly the
// given calendar day (time of day zeroed on both sides). It is an equality
// match, not "on or before".
func (s *Store) GetSalesExpiringOn(date time.Time) []domain.Sale {
	target := dayOf(date)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Sale{}
	for i := range s.sales {
		if s.sales[i].Status != domain.SaleActive {
			continue
		}
		if dayOf(s.sales[i].ExpiryDate).Equal(target) {
			out = append(out, copySale(s.sales[i]))
		}
	}
	return out
}

// copySale clones the renewal history so callers can never mutate or
// observe in-place appends to the stored slice.
func copySale(sale domain.Sale) domain.Sale {
	history := make([]domain.Renewal, len(sale.RenewalHistory))
	copy(history, sale.RenewalHistory)
	sale.RenewalHistory = history
	return sale
}
