package parameters

import (
	"context"
	"io"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
)

type runner struct {
	console *console.Flag
	logger  micrologger.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func (r *runner) Run(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, nil, func(ctx context.Context, client *consoleclient.Client) error {
		return r.run(ctx, client)
	})
}

type parametersGetter interface {
	GetParameters(ctx context.Context) (*consoleclient.Parameters, error)
}

func (r *runner) run(ctx context.Context, client parametersGetter) error {
	params, err := client.GetParameters(ctx)
	if err != nil {
		return microerror.Mask(err)
	}

	return console.Print(r.stdout, r.console.Output, params)
}
