// Package domain holds the registration types and the contracts between the
// CLI, the registration service and its collaborators. It re-exports the
// types and interfaces subpackages so callers import one path.
package domain
