// pkg/filter/filter.go
package filter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/config"
	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/metrics"
	"go.uber.org/zap"
)

// Event is the unit of work flowing through the pipeline.
type Event map[string]any

// ErrNotRegistered is returned by Process before a successful Register.
var ErrNotRegistered = errors.New("filter: not registered")

// Filter is one stage instance. Register must succeed exactly once before
// Process is called; the validated settings never change afterward.
type Filter struct {
	raw      *config.Config
	log      *zap.Logger
	settings *config.Settings
}

func New(raw *config.Config, log *zap.Logger) *Filter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Filter{raw: raw, log: log}
}

// Register validates the raw configuration and freezes the result. Any
// violated rule aborts stage startup; nothing partial is retained.
func (f *Filter) Register(ctx context.Context) error {
	start := time.Now()
	s, err := f.raw.Validate(f.log)
	metrics.ObserveRegistration(err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("filter registration failed: %w", err)
	}
	f.settings = s

	tls := s.TLS()
	f.log.Info("filter registered",
		zap.Bool("ssl", tls.Enabled()),
		zap.String("ssl_verification_mode", string(tls.VerificationMode())),
		zap.Int("hosts", len(s.Target().Hosts())),
	)
	return nil
}

// Process forwards the event unchanged. The call to the remote service is not
// implemented yet; this stays an identity transform.
func (f *Filter) Process(ctx context.Context, e Event) (Event, error) {
	if f.settings == nil {
		return nil, ErrNotRegistered
	}
	metrics.IncEventsProcessed()
	return e, nil
}

// Settings exposes the frozen configuration; nil before Register succeeds.
func (f *Filter) Settings() *config.Settings { return f.settings }
