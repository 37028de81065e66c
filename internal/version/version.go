// internal/version/version.go
package version

// Version is overridden at release time via -ldflags "-X".
var Version = "1.1.0"
