// Package cbrules defines the canonical rule codes (CB-series) reported by cbounds.
//
// Every finding of the engine carries a rule. The code gives it a stable
// numeric and textual identity, so findings can be filtered in the
// configuration, grouped by the reporter and matched in tests.
//
// # Structure
//
// Rule codes follow the format "CB<NNN>: <Name>" and are grouped by area:
//
//	000–009  Indexing and slicing
//	010–019  Arithmetic
//	900–999  Analysis itself
//
// Example:
//
//	cbrules.CB001NegativeIndex.String()      → "CB001: NegativeIndex"
//	cbrules.CB001NegativeIndex.Description() → "Index expression is always negative."
//
// # Notes
//
//   - Rule identifiers are stable, never renumber existing codes.
//   - Parse accepts either the code ("CB001") or the name ("NegativeIndex").
package cbrules
