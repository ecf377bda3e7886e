package vpnmon_builder

import (
	"context"
	"log"
	"os"
	"path/filepath"
)

// Packager freezes the application entry point into a single windowless
// executable using the virtualenv's pyinstaller.
//
// Success is judged by filesystem evidence, not by the tool's exit code: the
// tool is considered to have succeeded exactly when the named executable
// exists at its conventional output location afterwards. The exit code is
// never inspected. Keep it that way; the installer's artifact check is the
// one guarded failure condition of the whole pipeline.
type Packager struct {
	config *Config
	env    *Environment
	runner Runner
}

func NewPackager(config *Config, env *Environment, runner Runner) *Packager {
	return &Packager{config: config, env: env, runner: runner}
}

// ArtifactPath is the freeze tool's conventional output location for the
// executable.
func (p *Packager) ArtifactPath() string {
	return filepath.Join(p.config.BaseDir, "dist", p.config.Artifact)
}

// Build runs the freeze tool. The tool's own error status is logged and
// dropped; whether an artifact appeared is checked separately via Produced.
func (p *Packager) Build(ctx context.Context) {
	result, err := p.runner.Run(
		ctx, p.config.BaseDir, p.env.FreezeTool(),
		"--onefile", "--windowed", "--name", p.config.Artifact,
		p.config.Entrypoint,
	)
	if err != nil {
		log.Printf("Freeze tool reported: %s", err)
		if result != nil && result.Stderr != "" {
			log.Printf("Freeze tool stderr: %s", result.Stderr)
		}
	}
}

// Produced reports whether the executable artifact exists.
func (p *Packager) Produced() bool {
	info, err := os.Stat(p.ArtifactPath())
	return err == nil && !info.IsDir()
}
