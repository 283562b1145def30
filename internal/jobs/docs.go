// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DriverOrdersRefreshJob - Periodically marks the driver-eligible order
// view dirty so the next driver read refetches it from the entity store.
// In-process mutations already invalidate the view through the rule table;
// the poller bounds the staleness introduced by writers outside this
// process, which the rule table cannot see.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cache, refreshSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
