// Package sanitizer holds small string transforms and a generic pipeline to
// chain them.
//
//	clean := sanitizer.Apply(input, sanitizer.Trim, sanitizer.SingleLine)
//	email := sanitizer.NormalizeEmail(" John@Example.COM ")  // "john@example.com"
//	masked := sanitizer.MaskEmail(email)                      // "j***@example.com"
package sanitizer
