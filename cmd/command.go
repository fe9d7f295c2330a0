package cmd

import (
	"io"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/apiclient"
	"github.com/camunda-community-hub/consolectl/cmd/cluster"
	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/cmd/parameters"
	"github.com/camunda-community-hub/consolectl/cmd/secret"
	"github.com/camunda-community-hub/consolectl/cmd/version"
)

const (
	name        = "consolectl"
	description = "Manages clusters, API clients and secrets through the Camunda Console API."
)

type Config struct {
	Logger micrologger.Logger
	Stderr io.Writer
	Stdout io.Writer

	BinaryName string
	GitCommit  string
	Source     string
}

func New(config Config) (*cobra.Command, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.BinaryName == "" {
		config.BinaryName = name
	}

	if config.GitCommit == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.GitCommit must not be empty", config)
	}
	if config.Source == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Source must not be empty", config)
	}

	// Values are filled in when the root command parses its persistent flags.
	consoleFlag := &console.Flag{}

	var err error

	var clusterCmd *cobra.Command
	{
		c := cluster.Config{
			Logger:  config.Logger,
			Console: consoleFlag,
			Stderr:  config.Stderr,
			Stdout:  config.Stdout,
		}

		clusterCmd, err = cluster.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var clientCmd *cobra.Command
	{
		c := apiclient.Config{
			Logger:  config.Logger,
			Console: consoleFlag,
			Stderr:  config.Stderr,
			Stdout:  config.Stdout,
		}

		clientCmd, err = apiclient.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var secretCmd *cobra.Command
	{
		c := secret.Config{
			Logger:  config.Logger,
			Console: consoleFlag,
			Stderr:  config.Stderr,
			Stdout:  config.Stdout,
		}

		secretCmd, err = secret.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var parametersCmd *cobra.Command
	{
		c := parameters.Config{
			Logger:  config.Logger,
			Console: consoleFlag,
			Stderr:  config.Stderr,
			Stdout:  config.Stdout,
		}

		parametersCmd, err = parameters.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var versionCmd *cobra.Command
	{
		c := version.Config{
			Logger: config.Logger,
			Stderr: config.Stderr,
			Stdout: config.Stdout,

			GitCommit: config.GitCommit,
			Source:    config.Source,
		}

		versionCmd, err = version.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	c := &cobra.Command{
		Use:          config.BinaryName,
		Short:        description,
		Long:         description,
		SilenceUsage: true,
	}

	consoleFlag.Init(c)

	c.SetOut(config.Stdout)
	c.SetErr(config.Stderr)

	c.AddCommand(clusterCmd)
	c.AddCommand(clientCmd)
	c.AddCommand(secretCmd)
	c.AddCommand(parametersCmd)
	c.AddCommand(versionCmd)

	return c, nil
}
