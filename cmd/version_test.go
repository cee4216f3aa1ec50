package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		checkOutput func(string) bool
	}{
		{
			name: "version command shows build info",
			args: []string{"version"},
			checkOutput: func(output string) bool {
				return strings.HasPrefix(output, "podcast-api "+Version) && strings.Contains(output, "commit "+GitCommit)
			},
		},
		{
			name: "version command with --short flag",
			args: []string{"version", "--short"},
			checkOutput: func(output string) bool {
				return output == Version+"\n"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			if err != nil {
				t.Errorf("Execute() error = %v", err)
			}

			if !tt.checkOutput(output) {
				t.Errorf("Output check failed: %q", output)
			}
		})
	}
}

func TestVersionCommand_JSONMatchesBuildInfo(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	Version, GitCommit = "1.2.3", "abc123"
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	output, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report versionReport
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", output, err)
	}
	if report.BuildInfo != buildInfo() {
		t.Errorf("Expected %+v, got %+v", buildInfo(), report.BuildInfo)
	}
	if report.GoVersion == "" || report.Platform == "" {
		t.Errorf("Expected runtime fields, got %+v", report)
	}
}

func TestVersionCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	versionCmd, _, err := cmd.Find([]string{"version"})
	if err != nil {
		t.Fatalf("Failed to find version command: %v", err)
	}

	for _, name := range []string{"short", "json"} {
		if versionCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %s flag to be registered", name)
		}
	}
}
