// Package models defines the core domain models for DivvyUp.
//
// # Models
//
//   - Bill: a receipt being split, with its items, participants, and tax/tip percentages
//   - Item: one structured receipt line (name, unit price, quantity, ownership)
//   - Participant: a person splitting the bill
//   - Settings: user defaults applied when a new bill is created
//
// # Design Principles
//
//  1. **Derived values are computed, never stored**: Subtotal, TaxTotal, TipTotal and
//     FinalTotal are methods on Bill so they can never drift out of sync with the items.
//  2. **Ownership is a tagged choice**: an item is unassigned, owned by one participant,
//     or shared by a set. Both single-owner and shared-owner splits are representable.
//  3. **Avoid circular references**: items reference participants by ID string only.
//  4. **Mutations go through methods**: every mutating method bumps Bill.Version so
//     callers can observe change without the model knowing about any notification
//     mechanism.
//
// The extraction pipeline (package extractor) produces Items, and the allocation engine
// (package calculator) consumes snapshots of a Bill; neither holds a reference back into
// this package's mutable state.
package models
