package secret

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
)

type runner struct {
	flag    *flag
	console *console.Flag
	logger  micrologger.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func (r *runner) List(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.Validate, func(ctx context.Context, client *consoleclient.Client) error {
		return r.list(ctx, client)
	})
}

type secretLister interface {
	GetSecrets(ctx context.Context, clusterUUID string) (consoleclient.Secrets, error)
}

func (r *runner) list(ctx context.Context, client secretLister) error {
	secrets, err := client.GetSecrets(ctx, r.flag.Cluster)
	if err != nil {
		return microerror.Mask(err)
	}

	return console.Print(r.stdout, r.console.Output, secrets)
}

func (r *runner) Create(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.ValidateCreate, func(ctx context.Context, client *consoleclient.Client) error {
		return r.create(ctx, client, args[0])
	})
}

type secretCreator interface {
	CreateSecret(ctx context.Context, req consoleclient.CreateSecretRequest) error
}

func (r *runner) create(ctx context.Context, client secretCreator, secretName string) error {
	value, err := r.value()
	if err != nil {
		return microerror.Mask(err)
	}

	r.logger.LogCtx(ctx, "message", fmt.Sprintf("creating secret %#q in cluster %s", secretName, r.flag.Cluster))

	err = client.CreateSecret(ctx, consoleclient.CreateSecretRequest{
		ClusterUUID: r.flag.Cluster,
		SecretName:  secretName,
		SecretValue: value,
	})
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

func (r *runner) Delete(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.Validate, func(ctx context.Context, client *consoleclient.Client) error {
		r.logger.LogCtx(ctx, "message", fmt.Sprintf("deleting secret %#q from cluster %s", args[0], r.flag.Cluster))

		err := client.DeleteSecret(ctx, r.flag.Cluster, args[0])
		if err != nil {
			return microerror.Mask(err)
		}

		return nil
	})
}

func (r *runner) value() (string, error) {
	if r.flag.ValueFromEnv == "" {
		return r.flag.Value, nil
	}

	value, ok := os.LookupEnv(r.flag.ValueFromEnv)
	if !ok {
		return "", microerror.Maskf(invalidFlagError, "environment variable %#q is not set", r.flag.ValueFromEnv)
	}

	return value, nil
}

