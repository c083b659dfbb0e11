// Package kernel provides the core domain primitives shared by every aggregate
// in the system. Currently that is UUID, the value object used as the identity
// of users, restaurants, dishes, orders and payments.
//
// Kernel types are immutable, validate themselves, and are safe for concurrent
// use.
package kernel
