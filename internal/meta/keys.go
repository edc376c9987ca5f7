package meta

// Canonical value names, used by Get and as JSON field names.
const (
	NameABI         = "abi"
	NameBuilder     = "builder"
	NameGitRepo     = "gitRepo"
	NameVersionName = "versionName"
	NameCommitHash  = "commitHash"
	NameTimestamp   = "timestamp"
)

// Key names the environment variable and project property for one value.
type Key struct {
	Name     string
	Env      string
	Property string
}

var (
	KeyABI         = Key{Name: NameABI, Env: "BUILD_ABI", Property: "buildABI"}
	KeyBuilder     = Key{Name: NameBuilder, Env: "CI_NAME", Property: "ciName"}
	KeyGitRepo     = Key{Name: NameGitRepo, Env: "BUILD_GIT_REPO", Property: "buildGitRepo"}
	KeyVersionName = Key{Name: NameVersionName, Env: "BUILD_VERSION_NAME", Property: "buildVersionName"}
	KeyCommitHash  = Key{Name: NameCommitHash, Env: "BUILD_COMMIT_HASH", Property: "buildCommitHash"}
	KeyTimestamp   = Key{Name: NameTimestamp, Env: "BUILD_TIMESTAMP", Property: "buildTimestamp"}
)

// Keys returns every key in a stable order.
func Keys() []Key {
	return []Key{KeyABI, KeyBuilder, KeyGitRepo, KeyVersionName, KeyCommitHash, KeyTimestamp}
}

// KeyByName finds a key by its canonical name.
func KeyByName(name string) (Key, bool) {
	for _, k := range Keys() {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// Git commands used for the computed defaults.
const (
	CmdUserName        = "git config user.name"
	CmdRemoteURL       = "git remote get-url origin"
	CmdDescribeNightly = "git describe --tags --long --always --match nightly"
	CmdDescribeRelease = "git describe --tags --long --always --match v*"
	CmdRevParseHead    = "git rev-parse HEAD"
)

const (
	// DefaultABI is used when neither BUILD_ABI nor buildABI is set.
	DefaultABI = "arm64-v8a"
	// UnknownBuilder replaces an empty or failing git user name.
	UnknownBuilder = "(Unknown)"
)
