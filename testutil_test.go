package vpnmon_builder

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/executor"
	"github.com/stretchr/testify/require"
)

// testConfig returns a fully resolved config rooted in temporary
// directories, so tests never touch the real home or working directory.
func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Product:      "VPN Monitor",
		Comment:      "System tray VPN status monitor",
		Categories:   []string{"Network", "Security", "Monitor"},
		Entrypoint:   "main.py",
		Artifact:     "vpn-monitor",
		Icon:         "vpn-monitor.png",
		VenvDir:      "venv",
		Packages:     []string{"PyQt6", "pyinstaller"},
		Modules:      []string{"PyQt6", "PyInstaller"},
		ProbeHost:    "203.0.113.1",
		ProbeTimeout: 2 * time.Second,
		Autostart:    true,
		Variables:    StringMap{"version": "1.0"},
		BaseDir:      t.TempDir(),
		HomeDir:      t.TempDir(),
	}
}

// fakeRunner records every invoked command and simulates the filesystem side
// effects of the external tools, so the pipeline can run without python,
// pyinstaller or ping being present.
type fakeRunner struct {
	t      *testing.T
	config *Config
	calls  [][]string

	venvErr         error
	importErr       error
	pingErr         error
	pipErr          error
	produceArtifact bool
}

func newFakeRunner(t *testing.T, config *Config) *fakeRunner {
	return &fakeRunner{t: t, config: config, produceArtifact: true}
}

func (f *fakeRunner) Run(
	ctx context.Context, dir, program string, args ...string,
) (*executor.Result, error) {
	f.calls = append(f.calls, append([]string{program}, args...))
	switch {
	case program == "python3" && len(args) > 2 && args[0] == "-m" && args[1] == "venv":
		if f.venvErr != nil {
			return failedResult(f.venvErr)
		}
		for _, bin := range []string{"python3", "pip", "pyinstaller"} {
			writeExecutable(f.t, filepath.Join(args[2], "bin", bin))
		}
	case strings.HasSuffix(program, "/bin/python3"):
		if f.importErr != nil {
			return failedResult(f.importErr)
		}
	case program == "ping":
		if f.pingErr != nil {
			return failedResult(f.pingErr)
		}
	case strings.HasSuffix(program, "/bin/pip"):
		if f.pipErr != nil {
			return failedResult(f.pipErr)
		}
	case strings.HasSuffix(program, "/bin/pyinstaller"):
		if f.produceArtifact {
			writeExecutable(f.t, filepath.Join(f.config.BaseDir, "dist", f.config.Artifact))
		}
	}
	return &executor.Result{}, nil
}

func failedResult(err error) (*executor.Result, error) {
	return &executor.Result{ExitCode: 1, Err: err}, err
}

// calledWith reports whether any recorded command contains every one of the
// given substrings across its program name and arguments.
func (f *fakeRunner) calledWith(substrings ...string) bool {
	for _, call := range f.calls {
		joined := strings.Join(call, " ")
		found := true
		for _, substring := range substrings {
			if !strings.Contains(joined, substring) {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
}

// newTestPipeline wires a pipeline with the fake runner and a deterministic
// icon stub, so tests don't need cairo at runtime.
func newTestPipeline(t *testing.T, config *Config, runner Runner) *Pipeline {
	t.Helper()
	pipeline := NewPipeline(config, runner)
	pipeline.renderIcon = func(path string) error {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		return os.WriteFile(path, []byte("stub icon bytes"), 0644)
	}
	return pipeline
}
