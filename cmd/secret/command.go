package secret

import (
	"io"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
)

const (
	name        = "secret"
	description = "Provides commands for managing connector secrets of a cluster."
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

	f := &flag{}

	r := &runner{
		flag:    f,
		console: config.Console,
		logger:  config.Logger,
		stderr:  config.Stderr,
		stdout:  config.Stdout,
	}

	c := &cobra.Command{
		Use:          name,
		Short:        description,
		Long:         description,
		SilenceUsage: true,
	}
	f.Init(c)

	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "Lists the secrets of a cluster with their values.",
		Args:         cobra.NoArgs,
		RunE:         r.List,
		SilenceUsage: true,
	}

	createCmd := &cobra.Command{
		Use:          "create <secret-name>",
		Short:        "Creates a secret.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Create,
		SilenceUsage: true,
	}
	f.InitCreate(createCmd)

	deleteCmd := &cobra.Command{
		Use:          "delete <secret-name>",
		Short:        "Deletes a secret.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Delete,
		SilenceUsage: true,
	}

	c.AddCommand(listCmd)
	c.AddCommand(createCmd)
	c.AddCommand(deleteCmd)

	return c, nil
}
