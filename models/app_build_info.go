package models

// AppBuildInfo describes the running agent build, exposed on the version
// endpoint of the local control API.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
