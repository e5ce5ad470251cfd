package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddAccount(ctx context.Context, in domain.AccountInput) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := domain.Account{
		ID:              uuid.NewString(),
		ProviderID:      in.ProviderID,
		ProviderName:    in.ProviderName,
		ProviderContact: in.ProviderContact,
		Platform:        in.Platform,
		Email:           in.Email,
		Password:        in.Password,
		Profiles:        in.Profiles,
		Cost:            in.Cost,
		PaymentDate:     in.PaymentDate,
		DaysAvailable:   in.DaysAvailable,
		NextPaymentDate: in.NextPaymentDate,
		Status:          in.Status,
	}
	s.accounts = append(s.accounts, account)
	if err := s.persist(ctx); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id string, upd domain.AccountUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.applyAccountUpdate(id, upd) {
		return nil
	}
	return s.persist(ctx)
}

// DeleteAccount does not guard against active sales referencing the account;
// such sales keep a dangling accountId and their linked cost reads as zero.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetAccountByID(id string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

func (s *Store) ListAccounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// GetAvailableAccounts returns available accounts in insertion order,
// optionally narrowed to one platform (empty platform means all).
func (s *Store) GetAvailableAccounts(platform domain.Platform) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Account{}
	for _, a := range s.accounts {
		if a.Status != domain.AccountAvailable {
			continue
		}
		if platform != "" && a.Platform != platform {
			continue
		}
		out = append(out, a)
	}
	return out
}

// applyAccountUpdate mutates in place without persisting; callers hold the
// write lock. Reports whether the account existed.
func (s *Store) applyAccountUpdate(id string, upd domain.AccountUpdate) bool {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			upd.Apply(&s.accounts[i])
			return true
		}
	}
	return false
}
