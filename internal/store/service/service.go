package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/streamrent/streamrent/internal/clock"
	"github.com/streamrent/streamrent/internal/kvstore"
	"github.com/streamrent/streamrent/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Collection keys in the durable mirror.
const (
	keyCustomers = "customers"
	keyProviders = "providers"
	keyAccounts  = "accounts"
	keySales     = "sales"
	keyRecharges = "recharges"
	keyProfiles  = "profiles"
	keyPayments  = "payments"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	KV    kvstore.Store
	Clock clock.Clock
}

// Store holds the seven entity collections in memory, mirrored to the
// key-value backend on every mutation. A single lock serializes mutations;
// reads take the read lock and return copies, so the invariants of the sale
// lifecycle hold under a concurrent HTTP host.
type Store struct {
	mu    sync.RWMutex
	log   *zap.Logger
	kv    kvstore.Store
	clock clock.Clock

	customers []domain.Customer
	providers []domain.Provider
	accounts  []domain.Account
	sales     []domain.Sale
	recharges []domain.Recharge
	profiles  []domain.Profile
	payments  []domain.Payment
}

func New(p Params) *Store {
	return &Store{
		log:       p.Log.Named("store"),
		kv:        p.KV,
		clock:     p.Clock,
		customers: []domain.Customer{},
		providers: []domain.Provider{},
		accounts:  []domain.Account{},
		sales:     []domain.Sale{},
		recharges: []domain.Recharge{},
		profiles:  []domain.Profile{},
		payments:  []domain.Payment{},
	}
}

var _ domain.Service = (*Store)(nil)

// Load reads every collection from the backend. Absent keys are initialized
// to the empty array so a fresh backend round-trips cleanly.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	missing := false
	load := func(key string, target any) error {
		raw, err := s.kv.Get(ctx, key)
		if err != nil {
			return err
		}
		if raw == nil {
			missing = true
			return nil
		}
		return json.Unmarshal(raw, target)
	}

	if err := load(keyCustomers, &s.customers); err != nil {
		return err
	}
	if err := load(keyProviders, &s.providers); err != nil {
		return err
	}
	if err := load(keyAccounts, &s.accounts); err != nil {
		return err
	}
	if err := load(keySales, &s.sales); err != nil {
		return err
	}
	if err := load(keyRecharges, &s.recharges); err != nil {
		return err
	}
	if err := load(keyProfiles, &s.profiles); err != nil {
		return err
	}
	if err := load(keyPayments, &s.payments); err != nil {
		return err
	}

	if missing {
		if err := s.persist(ctx); err != nil {
			return err
		}
	}

	s.log.Info("collections loaded",
		zap.Int("customers", len(s.customers)),
		zap.Int("providers", len(s.providers)),
		zap.Int("accounts", len(s.accounts)),
		zap.Int("sales", len(s.sales)),
		zap.Int("recharges", len(s.recharges)),
		zap.Int("profiles", len(s.profiles)),
		zap.Int("payments", len(s.payments)),
	)
	return nil
}

// persist serializes all seven collections and writes them in one atomic
// batch. Writing the whole set on every mutation keeps read-after-write
// consistency trivially. Callers hold the write lock.
func (s *Store) persist(ctx context.Context) error {
	values := make(map[string][]byte, 7)
	marshal := func(key string, source any) error {
		raw, err := json.Marshal(source)
		if err != nil {
			return err
		}
		values[key] = raw
		return nil
	}

	if err := marshal(keyCustomers, s.customers); err != nil {
		return err
	}
	if err := marshal(keyProviders, s.providers); err != nil {
		return err
	}
	if err := marshal(keyAccounts, s.accounts); err != nil {
		return err
	}
	if err := marshal(keySales, s.sales); err != nil {
		return err
	}
	if err := marshal(keyRecharges, s.recharges); err != nil {
		return err
	}
	if err := marshal(keyProfiles, s.profiles); err != nil {
		return err
	}
	if err := marshal(keyPayments, s.payments); err != nil {
		return err
	}

	return s.kv.SetAll(ctx, values)
}

// dayOf zeroes the time of day in UTC; expiry matching is exact-day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RegisterLoad loads the collections from the backend before the host
// starts serving.
func RegisterLoad(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Load(ctx)
		},
	})
}
