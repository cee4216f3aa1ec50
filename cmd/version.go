package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/killallgit/podcast-api/api/types"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/killallgit/podcast-api/cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// buildInfo is reported by both this command and the /version endpoint
func buildInfo() types.BuildInfo {
	return types.BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

type versionReport struct {
	types.BuildInfo
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Display the build of the Podcast API binary.

The same version, commit and build time are served by GET /version.`,
		RunE: runVersion,
	}
	cmd.Flags().BoolP("short", "s", false, "print just the version number")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	report := versionReport{
		BuildInfo: buildInfo(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(out, report.Version)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "podcast-api %s (commit %s, built %s)\n", report.Version, report.GitCommit, report.BuildTime)
	fmt.Fprintf(out, "%s %s\n", report.GoVersion, report.Platform)
	return nil
}
