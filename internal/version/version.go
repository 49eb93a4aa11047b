// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X dnarle/internal/version.Version=...".
var Version = "0.1.0-dev"
