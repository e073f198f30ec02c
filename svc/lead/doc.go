// Package lead implements the persistence call behind the landing page email
// form.
//
// Service.SaveEmail normalizes and validates the address, rejects addresses
// that are already stored, writes a Lead with request metadata and then sends
// a confirmation to the visitor and an alert to the sales inbox.
//
// Storage backends:
//
//   - MemoryStorage - process memory, for development and tests
//   - PostgresStorage - pgx, table created by the migrations package
//   - MongoStorage - collection "leads" with a unique email index
//   - RedisStorage - hash "leads:<email>" plus sorted set "leads:index"
//
// Errors that carry text safe for visitors implement PublicMessage; use the
// PublicMessage helper to extract it:
//
//	res, err := svc.SaveEmail(ctx, "jane@example.com")
//	if msg, ok := lead.PublicMessage(err); ok {
//		// show msg
//	}
package lead
