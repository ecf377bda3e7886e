package vpnmon_builder

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type envAction int

const (
	// envReuse keeps the existing virtualenv and gives it an opportunistic
	// update check.
	envReuse envAction = iota
	// envCreate builds a fresh virtualenv because none exists.
	envCreate
	// envRecreate deletes a corrupt virtualenv first, then builds a fresh
	// one. A virtualenv whose python binary is missing or not executable
	// counts as corrupt.
	envRecreate
)

// Environment resolves the isolated Python runtime environment (a virtualenv
// inside the base directory) that the freeze tool runs out of.
//
// A present but degraded environment - runtime executable, required modules
// not importable - is reused as-is with only a log line. Reinstallation only
// happens when the runtime binary itself is broken.
type Environment struct {
	config *Config
	runner Runner
}

func NewEnvironment(config *Config, runner Runner) *Environment {
	return &Environment{config: config, runner: runner}
}

// Dir is the virtualenv directory.
func (e *Environment) Dir() string {
	return filepath.Join(e.config.BaseDir, e.config.VenvDir)
}

// Python is the virtualenv's own interpreter binary.
func (e *Environment) Python() string { return filepath.Join(e.Dir(), "bin", "python3") }

// Pip is the virtualenv's own package installer.
func (e *Environment) Pip() string { return filepath.Join(e.Dir(), "bin", "pip") }

// FreezeTool is the virtualenv's pyinstaller binary.
func (e *Environment) FreezeTool() string { return filepath.Join(e.Dir(), "bin", "pyinstaller") }

// Resolve brings the environment into a usable state: reuse it if present,
// recreate it if corrupt, create it if absent. Only failure to create a
// fresh environment is fatal.
func (e *Environment) Resolve(ctx context.Context) error {
	switch e.decide() {
	case envRecreate:
		log.Printf("Virtualenv runtime at %s is not executable, recreating", e.Python())
		if err := os.RemoveAll(e.Dir()); err != nil {
			return fmt.Errorf("unable to remove corrupt virtualenv '%s': %w", e.Dir(), err)
		}
		fallthrough
	case envCreate:
		return e.create(ctx)
	}
	log.Printf("Reusing virtualenv at %s", e.Dir())
	if !e.modulesImportable(ctx) {
		// Logged only. Missing modules do not force a reinstall.
		log.Printf("Modules %s not importable, continuing with degraded environment",
			strings.Join(e.config.Modules, ", "))
	}
	if e.hostReachable(ctx) {
		e.update(ctx)
	} else {
		log.Printf("Host %s not reachable, skipping dependency update", e.config.ProbeHost)
	}
	return nil
}

// decide picks the action for the current on-disk state of the virtualenv.
func (e *Environment) decide() envAction {
	if _, err := os.Stat(e.Dir()); err != nil {
		return envCreate
	}
	if !osFileExecAccess(e.Python()) {
		return envRecreate
	}
	return envReuse
}

// create builds a fresh virtualenv and installs the declared package set
// into it. Errors here abort the whole pipeline.
func (e *Environment) create(ctx context.Context) error {
	log.Printf("Creating virtualenv at %s", e.Dir())
	_, err := e.runner.Run(ctx, e.config.BaseDir, "python3", "-m", "venv", e.Dir())
	if err != nil {
		return fmt.Errorf("unable to create virtualenv: %w", err)
	}
	args := append([]string{"install"}, e.config.Packages...)
	_, err = e.runner.Run(ctx, e.config.BaseDir, e.Pip(), args...)
	if err != nil {
		return fmt.Errorf("unable to install packages into virtualenv: %w", err)
	}
	return nil
}

// modulesImportable probes whether the required modules import cleanly in
// the virtualenv's interpreter.
func (e *Environment) modulesImportable(ctx context.Context) bool {
	probe := "import " + strings.Join(e.config.Modules, ", ")
	_, err := e.runner.Run(ctx, e.config.BaseDir, e.Python(), "-c", probe)
	return err == nil
}

// hostReachable sends a single ping to the probe host, bounded by the probe
// timeout. One attempt, no retry.
func (e *Environment) hostReachable(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, e.config.ProbeTimeout)
	defer cancel()
	_, err := e.runner.Run(
		probeCtx, e.config.BaseDir, "ping", "-c", "1", "-W", "2", e.config.ProbeHost,
	)
	return err == nil
}

// update quietly upgrades the installed package set. A failing upgrade is
// logged and otherwise ignored.
func (e *Environment) update(ctx context.Context) {
	log.Printf("Updating packages in virtualenv at %s", e.Dir())
	args := append([]string{"install", "--quiet", "--upgrade"}, e.config.Packages...)
	if _, err := e.runner.Run(ctx, e.config.BaseDir, e.Pip(), args...); err != nil {
		log.Printf("Package update failed: %s", err)
	}
}
