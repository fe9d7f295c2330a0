package consoleclient

import (
	"context"
	"net/http"

	"github.com/giantswarm/microerror"
)

func (c *Client) GetClients(ctx context.Context, clusterUUID string) ([]ClusterClient, error) {
	r := request{
		method:     http.MethodGet,
		path:       "{clusterUuid}/clients",
		pathParams: map[string]string{"clusterUuid": clusterUUID},
	}

	var clients []ClusterClient
	err := c.do(ctx, r, &clients)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (*CreatedClusterClient, error) {
	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	r := request{
		method:     http.MethodPost,
		path:       "{clusterUuid}/clients",
		pathParams: map[string]string{"clusterUuid": req.ClusterUUID},
		body: createClientBody{
			ClientName:  req.ClientName,
			Permissions: permissions,
		},
	}

	var created CreatedClusterClient
	err := c.do(ctx, r, &created)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return &created, nil
}

func (c *Client) GetClient(ctx context.Context, clusterUUID, clientID string) (*ClusterClientConnectionDetails, error) {
	r := request{
		method: http.MethodGet,
		path:   "{clusterUuid}/clients/{clientId}",
		pathParams: map[string]string{
			"clusterUuid": clusterUUID,
			"clientId":    clientID,
		},
	}

	var details ClusterClientConnectionDetails
	err := c.do(ctx, r, &details)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return &details, nil
}

func (c *Client) DeleteClient(ctx context.Context, clusterUUID, clientID string) error {
	r := request{
		method: http.MethodDelete,
		path:   "{clusterUuid}/clients/{clientId}",
		pathParams: map[string]string{
			"clusterUuid": clusterUUID,
			"clientId":    clientID,
		},
	}

	err := c.do(ctx, r, nil)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
