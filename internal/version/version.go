package version

// Set at build time with -ldflags "-X github.com/redjax/forecast/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "forecast"
	RepoUrl  = "https://github.com/redjax/forecast"
	Package  = "forecast"
)

type PackageInfo struct {
	PackageName        string `json:"package"`
	RepoUrl            string `json:"repo_url"`
	PackageVersion     string `json:"version"`
	PackageCommit      string `json:"commit"`
	PackageReleaseDate string `json:"date"`
}

// GetPackageInfo returns a struct with information about the current build
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String is the one-line form printed by 'forecast version'.
func (p PackageInfo) String() string {
	return p.PackageName + " " + p.PackageVersion + " (commit " + p.PackageCommit + ", built " + p.PackageReleaseDate + ")"
}
