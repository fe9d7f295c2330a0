package cluster

import (
	"io"
	"os"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
)

const (
	name        = "cluster"
	description = "Provides commands for managing clusters."

	waitInterval = 20 * time.Second
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

		waitInterval: waitInterval,
	}

	c := &cobra.Command{
		Use:          name,
		Short:        description,
		Long:         description,
		SilenceUsage: true,
	}

	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "Lists all clusters of the organization.",
		Args:         cobra.NoArgs,
		RunE:         r.List,
		SilenceUsage: true,
	}

	getCmd := &cobra.Command{
		Use:          "get <cluster-uuid>",
		Short:        "Shows the metadata of a cluster.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Get,
		SilenceUsage: true,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a cluster.",
		Long: `Creates a cluster. Plan, channel, generation and region can be given as
UUID or name, see "consolectl parameters" for the available values.`,
		Args:         cobra.NoArgs,
		RunE:         r.Create,
		SilenceUsage: true,
	}
	f.InitCreate(createCmd)

	deleteCmd := &cobra.Command{
		Use:          "delete <cluster-uuid>",
		Short:        "Deletes a cluster.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Delete,
		SilenceUsage: true,
	}
	f.InitDelete(deleteCmd)

	c.AddCommand(listCmd)
	c.AddCommand(getCmd)
	c.AddCommand(createCmd)
	c.AddCommand(deleteCmd)

	return c, nil
}
