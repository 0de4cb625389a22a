// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization at startup:
//     timezone.Init(cfg)
//
//  2. Timestamps for appended log rows:
//     now := timezone.Now()
//
//  3. Parsing dates typed at the menu (Month/Day/Year):
//     t, err := timezone.Parse("01/02/2006", "12/31/2025")
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
