// Package order contains the order aggregate: lifecycle status, item
// snapshots with their recorded option selections, and the assignment of a
// courier. Totals are computed once at creation by the lifecycle engine and
// never recomputed here.
package order
