package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// ConfigFolderName is the folder in the user's home directory holding the kmerge settings file.
const ConfigFolderName = ".kmerge"

func IsDev() bool {
	return Version == "dev"
}

// BinaryName returns the name the kmerge binary is installed as.
func BinaryName() string {
	if IsDev() {
		return "dkmerge"
	}
	return "kmerge"
}
