package cmd

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "serve command with help",
			args:           []string{"serve", "--help"},
			wantErr:        false,
			expectedOutput: "Start the Podcast API server",
		},
		{
			name:           "serve command with invalid port",
			args:           []string{"serve", "--port", "invalid"},
			wantErr:        true,
			expectedOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(output, tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, output)
			}
		})
	}
}

func TestServeCommand_StopsWithContext(t *testing.T) {
	isolateConfig(t)

	// Help on an earlier tree must not leak into this one
	if _, err := execute(t, "serve", "--help"); err != nil {
		t.Fatalf("serve --help failed: %v", err)
	}

	// The server shuts down as soon as the context expires
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	output, err := executeContext(t, ctx, "serve", "--host", "127.0.0.1", "--port", "18089")
	if err != nil {
		t.Fatalf("serve returned error: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Server gracefully stopped") {
		t.Fatalf("Expected graceful shutdown log, got %q", output)
	}
	if appConfig == nil {
		t.Fatal("Expected serve to load the configuration")
	}
	if appConfig.Server.Port != 18089 {
		t.Errorf("Expected port flag to override config, got %d", appConfig.Server.Port)
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	// Test port flag
	portFlag := serveCmd.Flags().Lookup("port")
	if portFlag == nil {
		t.Error("Expected port flag to be registered")
	}

	// Test host flag
	hostFlag := serveCmd.Flags().Lookup("host")
	if hostFlag == nil {
		t.Error("Expected host flag to be registered")
	}
}
