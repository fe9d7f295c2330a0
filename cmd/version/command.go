package version

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/pkg/key"
	"github.com/camunda-community-hub/consolectl/pkg/project"
)

const (
	name        = "version"
	description = "Prints version information."
)

type Config struct {
	Logger micrologger.Logger
	Stderr io.Writer
	Stdout io.Writer

	GitCommit string
	Source    string
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
	if config.GitCommit == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.GitCommit must not be empty", config)
	}
	if config.Source == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Source must not be empty", config)
	}

	c := &cobra.Command{
		Use:          name,
		Short:        description,
		Long:         description,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(config.Stdout, "Version:    %s\n", project.Version())
			fmt.Fprintf(config.Stdout, "Git Commit: %s\n", config.GitCommit)
			fmt.Fprintf(config.Stdout, "Go Version: %s\n", runtime.Version())
			fmt.Fprintf(config.Stdout, "OS / Arch:  %s / %s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(config.Stdout, "Source:     %s\n", config.Source)
			fmt.Fprintf(config.Stdout, "User Agent: %s\n", key.UserAgent(project.Version(), ""))
			return nil
		},
	}

	return c, nil
}
