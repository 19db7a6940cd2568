// Package logging constructs the zap logger shared by every component.
package logging
