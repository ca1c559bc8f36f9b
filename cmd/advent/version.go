package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/version"
)

// versionInfo is the build metadata baked in through -ldflags.
type versionInfo struct {
	Version     string
	Fingerprint string
	GitCommit   string
	GitMessage  string
	BuildDate   string
}

// versionOptions selects the optional lines.
type versionOptions struct {
	showHash    bool
	showMessage bool
	showDate    bool
}

type versionPayload struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	Fingerprint string `json:"fingerprint"`
	GitCommit   string `json:"git_commit,omitempty"`
	GitMessage  string `json:"git_message,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	flags := versionCmd.Flags()
	flags.Bool("hash", false, "include git commit hash")
	flags.Bool("message", false, "include git commit message")
	flags.Bool("date", false, "include build timestamp")
	flags.Bool("full", false, "same as --hash --message --date")
	flags.String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	full, _ := flags.GetBool("full")
	opts := versionOptions{showHash: full, showMessage: full, showDate: full}
	if v, _ := flags.GetBool("hash"); v {
		opts.showHash = true
	}
	if v, _ := flags.GetBool("message"); v {
		opts.showMessage = true
	}
	if v, _ := flags.GetBool("date"); v {
		opts.showDate = true
	}
	format, _ := flags.GetString("format")

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		renderVersionPretty(out, collectVersionInfo(), opts)
		return nil
	case "json":
		return renderVersionJSON(out, collectVersionInfo(), opts)
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func collectVersionInfo() versionInfo {
	info := versionInfo{
		Version:     strings.TrimSpace(version.Version),
		Fingerprint: version.Fingerprint(),
		GitCommit:   strings.TrimSpace(version.GitCommit),
		GitMessage:  strings.TrimSpace(version.GitMessage),
		BuildDate:   strings.TrimSpace(version.BuildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// payload keeps only the selected optional fields, unknown ones spelled out.
func (o versionOptions) payload(info versionInfo) versionPayload {
	p := versionPayload{Tool: "advent", Version: info.Version, Fingerprint: info.Fingerprint}
	if o.showHash {
		p.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if o.showMessage {
		p.GitMessage = valueOrUnknown(info.GitMessage)
	}
	if o.showDate {
		p.BuildDate = valueOrUnknown(info.BuildDate)
	}
	return p
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	p := opts.payload(info)
	fmt.Fprintf(out, "%s %s\n", p.Tool, version.Colored())
	for _, line := range [...]struct{ label, value string }{
		{"commit:", p.GitCommit},
		{"message:", p.GitMessage},
		{"built:", p.BuildDate},
	} {
		if line.value != "" {
			fmt.Fprintf(out, "%-8s %s\n", line.label, line.value)
		}
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(opts.payload(info))
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
