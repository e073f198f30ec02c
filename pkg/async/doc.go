// Package async runs functions in goroutines and collects their results
// through typed futures.
//
//	confirm := async.Async(ctx, lead, sendConfirmation)
//	alert := async.Async(ctx, lead, sendSalesAlert)
//	if _, err := async.WaitAll(ctx, confirm, alert); err != nil {
//		log.WarnContext(ctx, "notifications failed", logger.Error(err))
//	}
package async
