// Package order provides the Order aggregate: an order header, its items and
// the append-only history of its status changes, treated as one consistency
// boundary.
//
// The package includes:
//   - Order: the aggregate root owning items and status history
//   - Item: a line of the order, created only through Order.AddItem
//   - StatusChange: one audit record per status transition
//   - Status: the state machine behind the lifecycle
//
// Key business rules:
//   - total amount equals the sum of item subtotals and is never negative
//   - status history is append-only, chronological and starts with Created
//   - lifecycle: Created -> Paid -> Shipped -> Completed, or Created -> Cancelled
//   - items can be added in any state except Cancelled
//
// Money is github.com/shopspring/decimal throughout; no binary floating point
// is involved in totals.
package order
