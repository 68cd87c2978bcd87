package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/grouphell/pkg/version.version=..."
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}
