package version

import (
	"fmt"
	"io"
)

func writePackageInfo(w io.Writer) error {
	info := GetPackageInfo()

	_, err := fmt.Fprintf(w,
		"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
		info.PackageName,
		RepoUser,
		RepoName,
		info.RepoUrl,
		info.PackageVersion,
		info.PackageCommit,
		info.PackageReleaseDate,
	)
	return err
}
