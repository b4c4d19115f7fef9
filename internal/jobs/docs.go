// Package jobs provides scheduled background tasks for the delivery system.
//
// Jobs are driven by github.com/robfig/cron/v3 with second-level schedules.
// A run never overlaps the previous run of the same job.
//
// # Available Jobs
//
//  1. CourierAssignmentJob offers unbound DELIVERER_PENDING orders to couriers
//     that became idle after the order was put up for delivery.
//  2. OfferExpiryJob withdraws offers a courier left undecided for longer than
//     the offer TTL and re-offers the order to someone else.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(jobs.Config{
//		AssignmentSchedule: "* * * * * *",
//		ExpirySchedule:     "*/5 * * * * *",
//		OfferTTL:           2 * time.Minute,
//	}, assignHandler, expireHandler, metrics, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Finding nothing to do (no waiting order, no idle courier) is not logged.
// Every other failure is logged and counted; the next run tries again.
package jobs
