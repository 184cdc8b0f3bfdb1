// Package scan provides the decoded scan code value object and the append-only
// verification record.
//
// A scan code is exactly 27 ASCII digits with fixed-width positional fields
// (ticket number, article id, weight in grams, scale timestamp). Structurally
// invalid payloads fail decoding outright and never produce a record; semantic
// verification failures (wrong ticket, wrong product) are recorded with their
// reason so operators can retry.
package scan
