package apiclient

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/pkg/key"
)

const (
	name        = "client"
	description = "Provides commands for managing API clients of a cluster."
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
		Short:        "Lists the API clients of a cluster.",
		Args:         cobra.NoArgs,
		RunE:         r.List,
		SilenceUsage: true,
	}

	getCmd := &cobra.Command{
		Use:          "get <client-id>",
		Short:        "Shows the connection details of an API client.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Get,
		SilenceUsage: true,
	}

	createCmd := &cobra.Command{
		Use:          "create <client-name>",
		Short:        "Creates an API client. The client secret is only shown once.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Create,
		SilenceUsage: true,
	}
	f.InitCreate(createCmd)

	deleteCmd := &cobra.Command{
		Use:          "delete <client-id>",
		Short:        "Deletes an API client.",
		Args:         cobra.ExactArgs(1),
		RunE:         r.Delete,
		SilenceUsage: true,
	}

	exportCmd := &cobra.Command{
		Use:   "export <client-id>",
		Short: "Exports the connection details of an API client as Kubernetes secret.",
		Long: fmt.Sprintf(`Exports the connection details of an API client as Kubernetes secret.
The manifest is printed unless --%s is given, in which case the secret is
created or updated in that cluster.`, flagKubeconfig),
		Args:         cobra.ExactArgs(1),
		RunE:         r.Export,
		SilenceUsage: true,
	}
	f.InitExport(exportCmd)

	c.AddCommand(listCmd)
	c.AddCommand(getCmd)
	c.AddCommand(createCmd)
	c.AddCommand(deleteCmd)
	c.AddCommand(exportCmd)

	return c, nil
}

func permissionsHelp() string {
	return fmt.Sprintf(`Permission of the client, may be repeated. Possible values: <%s>`, strings.Join(key.AllPermissions(), "|"))
}
