// Package services contains domain services that coordinate operations
// across multiple aggregates. Domain services hold business logic that
// does not naturally belong to a single aggregate root.
package services
