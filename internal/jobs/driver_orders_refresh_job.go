package jobs

import (
	"context"
	"log/slog"

	"thumathina/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DriverOrdersRefreshJob periodically invalidates the driver-eligible order
// view. The view is the most contended one on the platform: retailers
// confirm orders and drivers take them concurrently, and mutations applied
// by other processes never reach this process's invalidation table.
type DriverOrdersRefreshJob struct {
	cache  ports.ViewCache
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDriverOrdersRefreshJob creates the refresh job. The spec is a cron
// expression with a seconds field, e.g. "*/5 * * * * *".
func NewDriverOrdersRefreshJob(cache ports.ViewCache, spec string, logger *slog.Logger) *DriverOrdersRefreshJob {
	return &DriverOrdersRefreshJob{
		cache:  cache,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "driver_orders_refresh_job"),
	}
}

// Start schedules the refresh.
func (j *DriverOrdersRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.cache.Invalidate(ports.OrdersDriverEligibleScope())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver orders refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the refresh job.
func (j *DriverOrdersRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver orders refresh job stopped")
}
