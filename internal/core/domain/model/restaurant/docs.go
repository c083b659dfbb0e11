// Package restaurant contains the catalog side of the domain: the Restaurant
// aggregate with its owner and promotion state, and the Dish aggregate whose
// options and choices drive order price computation.
package restaurant
