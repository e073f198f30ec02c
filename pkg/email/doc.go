// Package email sends transactional messages through Postmark, or writes
// them to disk in development.
//
//	sender, err := email.NewSender(cfg)
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "lead@example.com",
//		Subject:  "You're on the list",
//		BodyHTML: body,
//		Tag:      "lead-confirmation",
//	})
//
// Both senders validate params first and wrap failures with ErrFailedToSendEmail.
package email
