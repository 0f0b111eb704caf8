package version

// Version is overridden at build time with -ldflags "-X lfsr/internal/version.Version=…".
var Version = "dev"
