package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddPayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment := domain.Payment{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Method:     in.Method,
		Date:       in.Date,
	}
	s.payments = append(s.payments, payment)
	if err := s.persist(ctx); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id string, upd domain.PaymentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			upd.Apply(&s.payments[i])
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) DeletePayment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetPaymentByID(id string) (domain.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (s *Store) ListPayments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}
