// Package types defines the costbook domain model (Material, Product,
// RecipeLine, AppState), the Store interface for durable snapshots,
// configuration, and the standard error values shared across the system.
package types
