package store

import (
	"github.com/streamrent/streamrent/internal/store/domain"
	"github.com/streamrent/streamrent/internal/store/service"
	"go.uber.org/fx"
)

var Module = fx.Module("store.service",
	fx.Provide(service.New),
	fx.Provide(func(s *service.Store) domain.Service { return s }),
	fx.Invoke(service.RegisterLoad),
)
