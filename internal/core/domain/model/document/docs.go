// Package document provides the transport document (DDT) aggregate: frozen
// client/company snapshots, consolidated lines and totals derived by summation.
//
// Identifier and sequence number are allocated max-seen+1 and never reused.
// A document with zero lines is refused before anything is persisted.
package document
