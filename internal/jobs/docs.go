// Package jobs provides scheduled background tasks for the logistics registry.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only read the registry.
//
// # Available Jobs
//
// 1. DeliveryReportJob - At midnight on the 1st of each month, logs the delivery report of the previous month
// 2. RegistryStatsJob - Every minute, logs entity counts by status and state
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, statsHandler, clock, jobs.DefaultSchedules(), logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule continues. A job whose schedule does
// not parse fails to start, and StartAll stops the jobs it already started.
package jobs
