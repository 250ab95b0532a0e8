// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: users and their jokes
//   - Field validators for joke and login forms
//   - The submission state machine for the new-joke form
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validators are pure: no I/O, no side effects
package domain
