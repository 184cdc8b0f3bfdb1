// Package article provides the read-only catalog snapshot the core consumes
// from the external ticket store: the article identity, its VAT bracket and
// its VAT-inclusive unit price.
//
// The package includes:
//   - Article: a value object snapshot of a catalog row
//   - VATBracket: the closed tax bracket enumeration (4%, 10%, 22%) shared
//     with the till system, with net-from-gross price derivation
//
// Articles are never mutated by the core. The reserved ManualArticleID anchors
// document lines entered manually at consolidation time.
package article
