// Package ticket provides the domain model for sale receipts moving through
// the fulfillment pipeline and owns the ticket status state machine.
//
// The package includes:
//   - Ticket: the receipt aggregate with its line snapshot and task ownership
//   - Status: the integer status contract shared with the scale/till system,
//     with a closed legal-transition table
//   - Line: one weighed or counted item with an optional expiry date
//
// Key business rules:
//   - The status is the single source of truth for the ticket's pipeline
//     position and is only ever written through Ticket.Transition
//   - A ticket expires when the earliest line expiry date is strictly before
//     the current date; a product expiring today is not yet expired
//   - Draft-document markers are produced by the originating system only; the
//     core can only move such tickets back into the pipeline
package ticket
