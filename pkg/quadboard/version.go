// Package quadboard holds module-level metadata for the quadboard tool.
package quadboard

// Version is the released version of quadboard.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/quadboard"
