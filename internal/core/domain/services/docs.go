// Package services contains stateless domain services coordinating several
// aggregates:
//
//   - ScanVerifier matches decoded scan codes against the ticket a task
//     expects, resolving repeated ticket numbers by closest header timestamp.
//   - DocumentBuilder holds the consolidation math turning ticket lines and
//     manual entries into priced transport document lines.
//
// Both services are pure: persistence and status transitions stay with the
// command handlers.
package services
