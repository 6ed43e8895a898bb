// Package jobs provides scheduled background tasks for the back-office service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// DashboardSnapshotJob computes the dashboard on a schedule (every minute by default)
// and exports it as Prometheus gauges:
//
//	backoffice_dashboard_total_orders
//	backoffice_dashboard_total_revenue
//	backoffice_dashboard_active_users
//	backoffice_dashboard_total_products
//
// # Usage
//
//	gauges, err := jobs.NewDashboardGauges(prometheus.DefaultRegisterer)
//	snapshot := jobs.NewDashboardSnapshotJob(dashboardHandler, gauges, cfg.SnapshotSchedule, logger)
//
//	jobManager := jobs.NewJobManager(snapshot)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed snapshot is logged and the gauges keep their previous values.
// Failed job starts stop any already running jobs.
package jobs
