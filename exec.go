package vpnmon_builder

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/executor"
)

// Runner runs a single external command to completion. The pipeline never
// inspects more than the returned error and, in one documented case, ignores
// even that (see Packager). Tests substitute a script-driven fake.
type Runner interface {
	Run(ctx context.Context, dir, program string, args ...string) (*executor.Result, error)
}

type commandRunner struct{}

// NewRunner returns a Runner backed by real command execution. Output is
// captured, not forwarded to the console; the pipeline's own progress lines
// are the only console output.
func NewRunner() Runner { return commandRunner{} }

func (commandRunner) Run(
	ctx context.Context, dir, program string, args ...string,
) (*executor.Result, error) {
	return executor.New(program, args...).Execute(
		ctx,
		executor.SilentMode(),
		executor.WithWorkingDir(dir),
	)
}
