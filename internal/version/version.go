package version

// Version is overridden at build time with -ldflags "-X pairwalk/internal/version.Version=...".
var Version = "dev"
