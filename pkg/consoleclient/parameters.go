package consoleclient

import (
	"context"
	"net/http"

	"github.com/giantswarm/microerror"
)

// GetParameters returns the options available for cluster creation.
func (c *Client) GetParameters(ctx context.Context) (*Parameters, error) {
	var parameters Parameters
	err := c.do(ctx, request{method: http.MethodGet, path: "parameters"}, &parameters)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return &parameters, nil
}
