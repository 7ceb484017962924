package build

// Version is overridden by ldflags at release time.
var Version = "dev"
