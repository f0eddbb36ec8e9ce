package version

import "runtime"

// Set at build time via -ldflags.
var (
	Version   = "develop"
	GitCommit = ""
	BuildDate = ""
)

type BuildInfo struct {
	Version   string `yaml:"version,omitempty"`
	GitCommit string `yaml:"gitCommit,omitempty"`
	BuildDate string `yaml:"buildDate,omitempty"`
	GoVersion string `yaml:"goVersion,omitempty"`
}

func Get() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}
