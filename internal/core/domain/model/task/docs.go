// Package task provides the domain model for operator work assignments:
// grouping tickets into tasks, tracking per-ticket scan progress and deriving
// aggregate completion.
//
// The package includes:
//   - Task: the aggregate root owning its TaskTickets, with progress that is
//     recomputed from storage counts on every mutation rather than cached
//   - TaskTicket: the join of one task and one ticket with scanned/total item
//     counters (scanned never exceeds total)
//   - Number: the date-scoped sequential `TASK-YYYYMMDD-NNNN` identifier
//   - Status / TaskTicketStatus: derived progress enumerations
//
// A task is completed exactly when every one of its TaskTickets is completed;
// the completion timestamp is stamped once and completion triggers a
// notification to the task's creator.
package task
