// Package app wires the application together: it builds the logger,
// registers the correlation modules, loads the property package, validates
// the registry and runs the bubble/dew estimate.
package app
