package cluster

import (
	"context"
	"fmt"
	"io"
	"time"

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

	waitInterval time.Duration
}

func (r *runner) List(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, nil, func(ctx context.Context, client *consoleclient.Client) error {
		clusters, err := client.GetClusters(ctx)
		if err != nil {
			return microerror.Mask(err)
		}

		return console.Print(r.stdout, r.console.Output, clusters)
	})
}

func (r *runner) Get(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, nil, func(ctx context.Context, client *consoleclient.Client) error {
		cluster, err := client.GetCluster(ctx, args[0])
		if err != nil {
			return microerror.Mask(err)
		}

		return console.Print(r.stdout, r.console.Output, cluster)
	})
}

func (r *runner) Create(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.ValidateCreate, func(ctx context.Context, client *consoleclient.Client) error {
		return r.create(ctx, client)
	})
}

func (r *runner) Delete(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.ValidateDelete, func(ctx context.Context, client *consoleclient.Client) error {
		return r.delete(ctx, client, args[0])
	})
}

type clusterCreator interface {
	clusterGetter
	GetParameters(ctx context.Context) (*consoleclient.Parameters, error)
	CreateCluster(ctx context.Context, body consoleclient.CreateClusterBody) (*consoleclient.CreatedCluster, error)
}

func (r *runner) create(ctx context.Context, client clusterCreator) error {
	var body consoleclient.CreateClusterBody
	{
		r.logger.Debugf(ctx, "fetching cluster parameters")

		params, err := client.GetParameters(ctx)
		if err != nil {
			return microerror.Mask(err)
		}

		body, err = resolveCreateBody(params, r.flag)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	r.logger.LogCtx(ctx, "message", fmt.Sprintf("creating cluster %#q", body.Name), "plan", body.PlanTypeID, "channel", body.ChannelID, "generation", body.GenerationID, "region", body.RegionID)

	created, err := client.CreateCluster(ctx, body)
	if err != nil {
		return microerror.Mask(err)
	}

	r.logger.LogCtx(ctx, "message", fmt.Sprintf("created cluster %s", created.ClusterID))

	if r.flag.Wait {
		err = r.waitForHealthy(ctx, client, created.ClusterID)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	return console.Print(r.stdout, r.console.Output, created)
}

type clusterDeleter interface {
	clusterGetter
	DeleteCluster(ctx context.Context, clusterUUID string) error
}

func (r *runner) delete(ctx context.Context, client clusterDeleter, clusterUUID string) error {
	r.logger.LogCtx(ctx, "message", fmt.Sprintf("deleting cluster %s", clusterUUID))

	err := client.DeleteCluster(ctx, clusterUUID)
	if err != nil {
		return microerror.Mask(err)
	}

	if r.flag.Wait {
		err = r.waitForDeletion(ctx, client, clusterUUID)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	r.logger.LogCtx(ctx, "message", fmt.Sprintf("deleted cluster %s", clusterUUID))

	return nil
}
