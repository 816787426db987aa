// pkg/filterfx/module.go
package filterfx

import (
	"context"

	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/filter"
	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/logger"
	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Options allow per-deployment env keys/defaults without code duplication.
type Options struct {
	ConfigEnv     string // e.g. "FILTER_CONFIG"
	DefaultConfig string // e.g. "filter.toml"
}

func defaultOptions() Options {
	return Options{
		ConfigEnv:     "FILTER_CONFIG",
		DefaultConfig: "filter.toml",
	}
}

// Module wires the logger, metrics handler, and filter into an fx app. The
// one-shot registration runs in OnStart; a violated rule aborts startup.
func Module(opts ...func(*Options)) fx.Option {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return fx.Options(
		fx.Supply(o),
		logger.Module,
		metrics.Module,
		fx.Provide(provideFilter),
		fx.Invoke(registerHooks),
	)
}

func WithConfigEnv(k string) func(*Options) { return func(o *Options) { o.ConfigEnv = k } }
func WithDefaultConfig(path string) func(*Options) {
	return func(o *Options) { o.DefaultConfig = path }
}

func provideFilter(o Options, log *zap.Logger) (*filter.Filter, error) {
	path := envOr(o.ConfigEnv, o.DefaultConfig)
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Error("config load failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}
	return filter.New(&cfg, log), nil
}

func registerHooks(lc fx.Lifecycle, f *filter.Filter, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := f.Register(ctx); err != nil {
				log.Error("registration failed", zap.Error(err))
				return err
			}
			return nil
		},
	})
}
