package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		version, commit, build string
		want                   string
	}{
		{"1.2.3", "", "", "1.2.3"},
		{"1.2.3", " abc123 ", "", "1.2.3+abc123"},
		{"1.2.3", "", "f00d", "1.2.3+f00d"},
		{"1.2.3", "abc123", "f00d", "1.2.3+abc123+f00d"},
	}
	for _, tt := range tests {
		if got := fingerprint(tt.version, tt.commit, tt.build); got != tt.want {
			t.Errorf("fingerprint(%q, %q, %q) = %q, want %q", tt.version, tt.commit, tt.build, got, tt.want)
		}
	}
}

func TestFingerprintIncludesBuildID(t *testing.T) {
	id := BuildID()
	if id == "" {
		t.Skip("test binary has no build identity")
	}
	if !strings.HasSuffix(Fingerprint(), "+"+id) {
		t.Errorf("Fingerprint() = %q, want suffix %q", Fingerprint(), id)
	}
}

// Same version string, different binaries: the ids must differ.
func TestBuildIDFollowsExecutable(t *testing.T) {
	a, err := hashReader(strings.NewReader("solver v1"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := hashReader(strings.NewReader("solver v2"))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("different executables share build id %q", a)
	}
	if fingerprint("0.1.0-dev", "", a) == fingerprint("0.1.0-dev", "", b) {
		t.Error("dev builds of different code share a fingerprint")
	}
}

func TestVCSID(t *testing.T) {
	clean := []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}, {Key: "vcs.modified", Value: "false"}}
	if got := vcsID(clean); got != "abc" {
		t.Errorf("clean checkout = %q, want abc", got)
	}
	dirty := []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}, {Key: "vcs.modified", Value: "true"}}
	if got := vcsID(dirty); got != "" {
		t.Errorf("dirty checkout = %q, want empty", got)
	}
	if got := vcsID(nil); got != "" {
		t.Errorf("no vcs info = %q, want empty", got)
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = origVersion, origNoColor })
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}
