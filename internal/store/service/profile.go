package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamrent/streamrent/internal/store/domain"
)

func (s *Store) AddProfile(ctx context.Context, in domain.ProfileInput) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := domain.Profile{
		ID:             uuid.NewString(),
		Name:           in.Name,
		CustomerID:     in.CustomerID,
		AccountID:      in.AccountID,
		ProviderID:     in.ProviderID,
		Benefits:       in.Benefits,
		ExpirationDate: in.ExpirationDate,
	}
	s.profiles = append(s.profiles, profile)
	if err := s.persist(ctx); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *Store) UpdateProfile(ctx context.Context, id string, upd domain.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			upd.Apply(&s.profiles[i])
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) GetProfileByID(id string) (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Profile{}, false
}

func (s *Store) ListProfiles() []domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}
