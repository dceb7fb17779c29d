package version

// Version is overridden at build time with -ldflags "-X rnaseqde/internal/version.Version=...".
var Version = "0.1.0"
