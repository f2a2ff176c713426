package models

// AppBuildInfo holds build-time metadata injected through -ldflags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
