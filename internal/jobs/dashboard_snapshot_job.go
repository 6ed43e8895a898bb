package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultSnapshotSchedule runs the snapshot at the top of every minute.
const DefaultSnapshotSchedule = "0 * * * * *"

// DashboardQueryHandler computes the dashboard figures.
type DashboardQueryHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
}

// DashboardGauges exports the last successful dashboard snapshot.
type DashboardGauges struct {
	TotalOrders   prometheus.Gauge
	TotalRevenue  prometheus.Gauge
	ActiveUsers   prometheus.Gauge
	TotalProducts prometheus.Gauge
}

// NewDashboardGauges creates the gauges and registers them with reg.
func NewDashboardGauges(reg prometheus.Registerer) (*DashboardGauges, error) {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "backoffice",
			Subsystem: "dashboard",
			Name:      name,
			Help:      help,
		})
	}

	g := &DashboardGauges{
		TotalOrders:   gauge("total_orders", "Confirmed and shipped orders at the last snapshot."),
		TotalRevenue:  gauge("total_revenue", "Revenue over confirmed and shipped orders at the last snapshot."),
		ActiveUsers:   gauge("active_users", "Distinct customers with a confirmed or shipped order at the last snapshot."),
		TotalProducts: gauge("total_products", "Products in the catalog at the last snapshot."),
	}
	for _, c := range []prometheus.Collector{g.TotalOrders, g.TotalRevenue, g.ActiveUsers, g.TotalProducts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// DashboardSnapshotJob periodically computes the dashboard and publishes it as gauges.
// A failed run keeps the previous values rather than exporting zeros.
type DashboardSnapshotJob struct {
	handler  DashboardQueryHandler
	gauges   *DashboardGauges
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardSnapshotJob creates the job. An empty schedule falls back to DefaultSnapshotSchedule.
func NewDashboardSnapshotJob(
	handler DashboardQueryHandler,
	gauges *DashboardGauges,
	schedule string,
	logger *slog.Logger,
) *DashboardSnapshotJob {
	if schedule == "" {
		schedule = DefaultSnapshotSchedule
	}
	return &DashboardSnapshotJob{
		handler:  handler,
		gauges:   gauges,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dashboard_snapshot_job"),
	}
}

// Start schedules the snapshot.
func (j *DashboardSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot.
func (j *DashboardSnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	dashboard, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard snapshot failed", "error", err)
		return
	}

	revenue, _ := dashboard.TotalRevenue.Decimal().Float64()
	j.gauges.TotalOrders.Set(float64(dashboard.TotalOrders))
	j.gauges.TotalRevenue.Set(revenue)
	j.gauges.ActiveUsers.Set(float64(dashboard.ActiveUsers))
	j.gauges.TotalProducts.Set(float64(dashboard.TotalProducts))
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *DashboardSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job stopped")
}
