package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddCustomer(ctx context.Context, in domain.CustomerInput) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Country:   in.Country,
		Comment:   in.Comment,
		Status:    in.Status,
		CreatedAt: s.clock.Now(),
	}
	s.customers = append(s.customers, customer)
	if err := s.persist(ctx); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, upd domain.CustomerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			upd.Apply(&s.customers[i])
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetCustomerByID(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

func (s *Store) ListCustomers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
