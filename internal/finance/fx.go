package finance

import (
	"github.com/streamrent/streamrent/internal/finance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("finance.service",
	fx.Provide(service.New),
)
