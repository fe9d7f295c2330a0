package consoleclient

import (
	"context"
	"net/http"

	"github.com/giantswarm/microerror"
)

func (c *Client) GetSecrets(ctx context.Context, clusterUUID string) (Secrets, error) {
	r := request{
		method:     http.MethodGet,
		path:       "{clusterUuid}/secrets",
		pathParams: map[string]string{"clusterUuid": clusterUUID},
	}

	secrets := Secrets{}
	err := c.do(ctx, r, &secrets)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return secrets, nil
}

func (c *Client) CreateSecret(ctx context.Context, req CreateSecretRequest) error {
	r := request{
		method:     http.MethodPost,
		path:       "{clusterUuid}/secrets",
		pathParams: map[string]string{"clusterUuid": req.ClusterUUID},
		body: createSecretBody{
			SecretName:  req.SecretName,
			SecretValue: req.SecretValue,
		},
	}

	err := c.do(ctx, r, nil)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

func (c *Client) DeleteSecret(ctx context.Context, clusterUUID, secretName string) error {
	r := request{
		method: http.MethodDelete,
		path:   "{clusterUuid}/secrets/{secretName}",
		pathParams: map[string]string{
			"clusterUuid": clusterUUID,
			"secretName":  secretName,
		},
	}

	err := c.do(ctx, r, nil)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
