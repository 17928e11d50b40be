// Package timezone provides time helpers for the application.
//
// Timestamps (logs, health reports) are rendered in the configured application
// timezone, set through the APP_TIMEZONE environment variable using IANA names
// such as "UTC" or "Europe/London". It falls back to UTC when unset or invalid.
//
// Calendar dates (guest check-in and check-out) are zone-less:
//
//	d, err := timezone.ParseDate("2024-03-15") // midnight UTC
//	s := timezone.FormatDate(d)                // "2024-03-15"
package timezone
