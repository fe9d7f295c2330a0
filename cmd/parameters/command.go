package parameters

import (
	"io"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
)

const (
	name        = "parameters"
	description = "Shows the channels, generations, plan types and regions available for cluster creation."
)

type Config struct {
	Logger  micrologger.Logger
	Console *console.Flag
	Stderr  io.Writer
	Stdout  io.Writer
}

func New(config Config) (*cobra.Command, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Console == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Console must not be empty", config)
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}

	r := &runner{
		console: config.Console,
		logger:  config.Logger,
		stderr:  config.Stderr,
		stdout:  config.Stdout,
	}

	c := &cobra.Command{
		Use:          name,
		Short:        description,
		Long:         description,
		Args:         cobra.NoArgs,
		RunE:         r.Run,
		SilenceUsage: true,
	}

	return c, nil
}
