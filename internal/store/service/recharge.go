package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddRecharge(ctx context.Context, in domain.RechargeInput) (domain.Recharge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recharge := domain.Recharge{
		ID:              uuid.NewString(),
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerContact: in.CustomerContact,
		ProviderID:      in.ProviderID,
		ProviderName:    in.ProviderName,
		Cost:            in.Cost,
		Price:           in.Price,
		PaymentDate:     in.PaymentDate,
		Details:         in.Details,
	}
	s.recharges = append(s.recharges, recharge)
	if err := s.persist(ctx); err != nil {
		return domain.Recharge{}, err
	}
	return recharge, nil
}

func (s *Store) UpdateRecharge(ctx context.Context, id string, upd domain.RechargeUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recharges {
		if s.recharges[i].ID == id {
			upd.Apply(&s.recharges[i])
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) DeleteRecharge(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recharges {
		if s.recharges[i].ID == id {
			s.recharges = append(s.recharges[:i], s.recharges[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetRechargeByID(id string) (domain.Recharge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recharges {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recharge{}, false
}

func (s *Store) ListRecharges() []domain.Recharge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recharge, len(s.recharges))
	copy(out, s.recharges)
	return out
}

func (s *Store) GetRechargesByCustomerID(customerID string) []domain.Recharge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Recharge{}
	for _, r := range s.recharges {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out
}
