package cluster

import (
	"context"
	"fmt"

	"github.com/giantswarm/backoff"
	"github.com/giantswarm/microerror"

	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
	"github.com/camunda-community-hub/consolectl/pkg/key"
)

type clusterGetter interface {
	GetCluster(ctx context.Context, clusterUUID string) (*consoleclient.Cluster, error)
	GetClusters(ctx context.Context) ([]consoleclient.Cluster, error)
}

func (r *runner) waitForHealthy(ctx context.Context, client clusterGetter, clusterUUID string) error {
	r.logger.LogCtx(ctx, "message", fmt.Sprintf("waiting for cluster %s to be healthy", clusterUUID))

	o := func() error {
		err := ctx.Err()
		if err != nil {
			return backoff.Permanent(microerror.Mask(err))
		}

		cluster, err := client.GetCluster(ctx, clusterUUID)
		if consoleclient.IsNotFound(err) {
			// Freshly created clusters may not be visible yet.
			return microerror.Mask(err)
		} else if err != nil {
			return backoff.Permanent(microerror.Mask(err))
		}

		if cluster.Status.Ready != key.ClusterStatusHealthy {
			r.logger.LogCtx(ctx, "message", fmt.Sprintf("cluster %s is %s", clusterUUID, cluster.Status.Ready))
			return microerror.Maskf(clusterNotReadyError, "cluster %s is %s", clusterUUID, cluster.Status.Ready)
		}

		return nil
	}

	b := backoff.NewMaxRetries(r.flag.WaitRetries, r.waitInterval)

	err := backoff.Retry(o, b)
	if err != nil {
		return microerror.Mask(err)
	}

	r.logger.LogCtx(ctx, "message", fmt.Sprintf("cluster %s is healthy", clusterUUID))

	return nil
}

func (r *runner) waitForDeletion(ctx context.Context, client clusterGetter, clusterUUID string) error {
	r.logger.LogCtx(ctx, "message", fmt.Sprintf("waiting for cluster %s to be deleted", clusterUUID))

	o := func() error {
		err := ctx.Err()
		if err != nil {
			return backoff.Permanent(microerror.Mask(err))
		}

		clusters, err := client.GetClusters(ctx)
		if err != nil {
			return backoff.Permanent(microerror.Mask(err))
		}

		for _, cluster := range clusters {
			if cluster.UUID == clusterUUID {
				r.logger.LogCtx(ctx, "message", "waiting for cluster deletion")
				return microerror.Maskf(clusterNotDeletedError, "cluster %s still exists", clusterUUID)
			}
		}

		return nil
	}

	b := backoff.NewMaxRetries(r.flag.WaitRetries, r.waitInterval)

	err := backoff.Retry(o, b)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
