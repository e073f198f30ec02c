// Package hero implements the landing page hero section: an email capture
// form whose lifecycle is idle, submitting, succeeded and back to idle, plus a
// snackbar notification.
//
// Form is the controller. It validates the address, makes exactly one
// persistence call per accepted submit and, after success, schedules a reset
// that clears the input once the succeeded state has been shown. Close
// cancels that reset.
//
// Service mounts the HTTP surface:
//
//	GET  /               landing page
//	POST /hero/subscribe DataStar stream of form state, or a full page for plain form posts
//	POST /hero/dismiss   hide the snackbar
//	POST /api/leads      JSON persistence call
//
// Usage:
//
//	svc := hero.NewService(cfg, leadService, content, log, errHandler)
//	r.Mount("/", svc.Handle())
package hero
