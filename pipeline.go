package vpnmon_builder

import (
	"context"
	"fmt"
)

// State names a point in the pipeline's linear progression. Each state marks
// the stage the pipeline is currently working on; the two terminal states
// are StateInstalled and StateFailed.
type State string

const (
	StateStart     State = "START"
	StatePrep      State = "PREP"
	StateEnvReady  State = "ENV_READY"
	StateIconReady State = "ICON_READY"
	StatePackaged  State = "PACKAGED"
	StateInstalled State = "INSTALLED"
	StateFailed    State = "FAILED"
)

// Pipeline runs the five build stages strictly in sequence. Each stage's
// success gates the next; there are no retries and no rollback. A pipeline
// is single-use: create one per run.
//
// Concurrent runs against the same base directory are not safe (artifact
// move, virtualenv deletion and recreation race); nothing guards against
// that. Run one build at a time.
type Pipeline struct {
	config     *Config
	runner     Runner
	env        *Environment
	packager   *Packager
	installer  *Installer
	state      State
	report     *InstallReport
	renderIcon func(path string) error
	progress   func(State)
}

func NewPipeline(config *Config, runner Runner) *Pipeline {
	env := NewEnvironment(config, runner)
	packager := NewPackager(config, env, runner)
	return &Pipeline{
		config:     config,
		runner:     runner,
		env:        env,
		packager:   packager,
		installer:  NewInstaller(config, packager),
		state:      StateStart,
		renderIcon: RenderIcon,
		progress:   func(State) {},
	}
}

// SetProgressFunction registers a callback invoked once per stage, with the
// state the pipeline is entering.
func (p *Pipeline) SetProgressFunction(function func(State)) { p.progress = function }

// State returns the state the pipeline is in.
func (p *Pipeline) State() State { return p.state }

// Report returns the install report of a successful run, or nil.
func (p *Pipeline) Report() *InstallReport { return p.report }

// Run executes the whole pipeline. On the first stage error the pipeline
// stops in StateFailed and returns that error.
func (p *Pipeline) Run(ctx context.Context) error {
	p.enter(StatePrep)
	if err := prepareWorkspace(p.config); err != nil {
		return p.fail(err)
	}

	p.enter(StateEnvReady)
	if err := p.env.Resolve(ctx); err != nil {
		return p.fail(err)
	}

	p.enter(StateIconReady)
	if err := p.renderIcon(p.config.IconPath()); err != nil {
		return p.fail(err)
	}

	p.enter(StatePackaged)
	p.packager.Build(ctx)

	p.enter(StateInstalled)
	report, err := p.installer.Install()
	if err != nil {
		return p.fail(err)
	}
	p.report = report
	return nil
}

func (p *Pipeline) enter(state State) {
	p.state = state
	p.progress(state)
}

func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	return fmt.Errorf("pipeline failed: %w", err)
}
