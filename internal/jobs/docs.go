// Package jobs provides scheduled background tasks for the shop service.
//
// Jobs are cron based (github.com/robfig/cron/v3 with a seconds field) and
// call application command handlers, the same ones the HTTP adapter uses.
//
// # Available Jobs
//
// UnpaidOrderExpiryJob cancels orders left in created status for longer than
// ORDER_UNPAID_TTL. The sweep runs on EXPIRY_SCHEDULE, once a minute by
// default, and cancels through Order.Cancel so every expired order gets a
// cancelled entry in its status history.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, metrics, ttl, jobs.DefaultExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A TTL that is not
// positive or an invalid schedule makes StartAll fail.
package jobs
