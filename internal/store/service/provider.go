package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddProvider(ctx context.Context, in domain.ProviderInput) (domain.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider := domain.Provider{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Contact: in.Contact,
	}
	s.providers = append(s.providers, provider)
	if err := s.persist(ctx); err != nil {
		return domain.Provider{}, err
	}
	return provider, nil
}

func (s *Store) UpdateProvider(ctx context.Context, id string, upd domain.ProviderUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID == id {
			upd.Apply(&s.providers[i])
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteProvider removes the provider only. Accounts keep their snapshot of
// the provider's name and contact, and any providerId references dangle.
func (s *Store) DeleteProvider(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID == id {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetProviderByID(id string) (domain.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Provider{}, false
}

func (s *Store) ListProviders() []domain.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}
