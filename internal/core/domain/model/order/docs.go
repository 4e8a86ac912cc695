// Package order implements the order aggregate of the food-court core: the
// Order root, its Lines, and the Status state machine.
//
// An order is placed by a customer at a single restaurant, claimed by an
// employee of that restaurant, cooked, and handed over against a security PIN.
// The package enforces the invariants that are local to one order; the
// cross-entity rules (dish existence and activity, one active order per
// customer, employee affiliation) live in the use cases.
package order
