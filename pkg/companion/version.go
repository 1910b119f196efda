// Package companion holds build metadata for the companion module.
package companion

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/companion"

// Revision is the source revision, set at build time with -ldflags.
var Revision = "dev"
