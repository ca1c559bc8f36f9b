package version

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Version information for the advent CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Fingerprint identifies this build for cache keys: the version, the commit
// when known, and BuildID. Version alone stays "0.1.0-dev" across rebuilds.
func Fingerprint() string {
	return fingerprint(Version, GitCommit, BuildID())
}

func fingerprint(version, commit, build string) string {
	parts := []string{strings.TrimSpace(version)}
	if c := strings.TrimSpace(commit); c != "" {
		parts = append(parts, c)
	}
	if build != "" {
		parts = append(parts, build)
	}
	return strings.Join(parts, "+")
}

// BuildID changes whenever the solver code does: a hash of the running
// executable, else a clean vcs.revision from the build info. "" means the
// build cannot be told apart from another and nothing may be cached.
func BuildID() string {
	return buildID()
}

var buildID = sync.OnceValue(func() string {
	if exe, err := os.Executable(); err == nil {
		if id, err := hashFile(exe); err == nil {
			return id
		}
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return vcsID(info.Settings)
})

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hashReader(f)
}

func hashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)[:8]), nil
}

// vcsID returns the revision of a clean checkout; a dirty tree says nothing
// about the code that was built.
func vcsID(settings []debug.BuildSetting) string {
	var rev, modified string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if rev == "" || modified == "true" {
		return ""
	}
	return rev
}

// Colored renders Version with each of major.minor.patch coloured. Anything
// that is not a three-part version is returned as is.
func Colored() string {
	core, suffix, _ := strings.Cut(strings.TrimSpace(Version), "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
