// Package costbook holds module-level metadata.
package costbook

// Version is the costbook release version.
const Version = "0.1.0"
