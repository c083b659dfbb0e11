// Package services contains stateless domain services: the operation-entry
// AccessPolicy evaluating declared role requirements, and the
// OrderAccessPolicy deciding per-order visibility and status-transition
// rights.
package services
