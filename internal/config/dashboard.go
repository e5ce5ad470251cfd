package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DashboardConfig holds reporting policy knobs that operators tune without
// redeploying: the near-term window used for "expiring accounts" and the
// number of trailing months shown in the trend series.
type DashboardConfig struct {
	ExpiringWindowDays int `mapstructure:"expiringWindowDays"`
	TrendMonths        int `mapstructure:"trendMonths"`
}

func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		ExpiringWindowDays: 7,
		TrendMonths:        6,
	}
}

type DashboardConfigHolder struct {
	current atomic.Value // holds DashboardConfig
}

func NewDashboardConfigHolder() (*DashboardConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("dashboard")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/streamrent/config")
	v.AddConfigPath("/etc/streamrent")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STREAMRENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultDashboardConfig()
		v.SetDefault("dashboard.expiringWindowDays", defaults.ExpiringWindowDays)
		v.SetDefault("dashboard.trendMonths", defaults.TrendMonths)
	}

	var cfg DashboardConfig
	if err := v.UnmarshalKey("dashboard", &cfg); err != nil {
		return nil, err
	}
	if err := validateDashboardConfig(cfg); err != nil {
		return nil, err
	}

	holder := &DashboardConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated DashboardConfig
		if err := v.UnmarshalKey("dashboard", &updated); err != nil {
			log.Printf("[dashboard-config] reload failed: %v", err)
			return
		}
		if err := validateDashboardConfig(updated); err != nil {
			log.Printf("[dashboard-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[dashboard-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticDashboardConfigHolder wraps a fixed config with no file watching.
func NewStaticDashboardConfigHolder(cfg DashboardConfig) (*DashboardConfigHolder, error) {
	if err := validateDashboardConfig(cfg); err != nil {
		return nil, err
	}
	holder := &DashboardConfigHolder{}
	holder.current.Store(cfg)
	return holder, nil
}

func (h *DashboardConfigHolder) Get() DashboardConfig {
	return h.current.Load().(DashboardConfig)
}

func validateDashboardConfig(cfg DashboardConfig) error {
	if cfg.ExpiringWindowDays <= 0 {
		return errors.New("dashboard.expiringWindowDays must be positive")
	}
	if cfg.TrendMonths <= 0 {
		return errors.New("dashboard.trendMonths must be positive")
	}
	return nil
}
