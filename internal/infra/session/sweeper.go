package session

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"ratesmart/config"
	"ratesmart/internal/errors"
)

const defaultSweepSpec = "@every 10m"

// SweeperParams holds dependencies for the Sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Store  *Store
	Logger *slog.Logger
}

// Sweeper periodically evicts expired sessions.
type Sweeper struct {
	cron   *cron.Cron
	store  *Store
	logger *slog.Logger
}

// NewSweeper schedules the sweep and ties the cron runner to the fx lifecycle.
func NewSweeper(params SweeperParams) (*Sweeper, error) {
	spec := defaultSweepSpec
	if params.Config != nil && params.Config.Web != nil && params.Config.Web.SweepSpec != "" {
		spec = params.Config.Web.SweepSpec
	}

	sweeper, err := newSweeper(spec, params.Store, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: sweeper.Stop,
	})

	return sweeper, nil
}

func newSweeper(spec string, store *Store, logger *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		store:  store,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid session sweep spec %q", spec)
	}

	return s, nil
}

// Start begins running sweeps in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *Sweeper) sweep() {
	if removed := s.store.Sweep(); removed > 0 {
		s.logger.Debug("Expired sessions evicted", slog.Int("count", removed))
	}
}
