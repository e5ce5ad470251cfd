package main

import (
	"github.com/streamrent/streamrent/internal/clock"
	"github.com/streamrent/streamrent/internal/config"
	"github.com/streamrent/streamrent/internal/finance"
	"github.com/streamrent/streamrent/internal/kvstore"
	"github.com/streamrent/streamrent/internal/logger"
	"github.com/streamrent/streamrent/internal/server"
	"github.com/streamrent/streamrent/internal/store"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		kvstore.Module,
		store.Module,
		finance.Module,
		server.Module,
	)
	app.Run()
}
