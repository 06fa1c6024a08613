// Package customer provides the Customer aggregate root.
// Customers place orders and receive notifications about their progress.
package customer
