package consoleclient

import (
	"context"
	"net/http"

	"github.com/giantswarm/microerror"
)

func (c *Client) GetClusters(ctx context.Context) ([]Cluster, error) {
	var clusters []Cluster
	err := c.do(ctx, request{method: http.MethodGet, path: ""}, &clusters)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return clusters, nil
}

func (c *Client) GetCluster(ctx context.Context, clusterUUID string) (*Cluster, error) {
	r := request{
		method:     http.MethodGet,
		path:       "{clusterUuid}",
		pathParams: map[string]string{"clusterUuid": clusterUUID},
	}

	var cluster Cluster
	err := c.do(ctx, r, &cluster)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return &cluster, nil
}

func (c *Client) CreateCluster(ctx context.Context, body CreateClusterBody) (*CreatedCluster, error) {
	r := request{
		method: http.MethodPost,
		path:   "",
		body:   body,
	}

	var created CreatedCluster
	err := c.do(ctx, r, &created)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return &created, nil
}

func (c *Client) DeleteCluster(ctx context.Context, clusterUUID string) error {
	r := request{
		method:     http.MethodDelete,
		path:       "{clusterUuid}",
		pathParams: map[string]string{"clusterUuid": clusterUUID},
	}

	err := c.do(ctx, r, nil)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
