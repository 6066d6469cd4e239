package version

var (
	VersionSuffix = "" // eg. DEV
	VersionTag    = "v0.2.0"
	Version       string
	// Set by -ldflags "-X github.com/jakeogh/zfstool/version.Commit=..."
	Commit = ""
)

func init() {
	if Version == "" {
		if VersionSuffix == "" {
			Version = VersionTag
		} else {
			Version = VersionTag + "-" + VersionSuffix
		}
	}
}
