package version

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/xll-gen/cc-arrays/version.Version=...".
var Version = "v0.1.0-dev"
