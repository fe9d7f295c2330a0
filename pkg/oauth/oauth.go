// Package oauth provides bearer tokens for the Console API using the OAuth
// client credentials flow.
package oauth

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/camunda-community-hub/consolectl/pkg/credentials"
)

type Config struct {
	Logger micrologger.Logger

	Credentials credentials.Credentials
	// HTTPClient is used for token requests. http.DefaultClient when nil.
	HTTPClient *http.Client
}

// Provider fetches and caches console tokens. It is safe for concurrent use.
type Provider struct {
	logger     micrologger.Logger
	config     clientcredentials.Config
	httpClient *http.Client

	mutex sync.Mutex
	token *oauth2.Token
}

func New(config Config) (*Provider, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Credentials.OAuthURL == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.OAuthURL must not be empty", config)
	}
	if config.Credentials.ClientID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.ClientID must not be empty", config)
	}
	if config.Credentials.ClientSecret == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.ClientSecret must not be empty", config)
	}
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}

	params := url.Values{}
	if config.Credentials.Audience != "" {
		params.Set("audience", config.Credentials.Audience)
	}

	p := &Provider{
		logger: config.Logger,
		config: clientcredentials.Config{
			ClientID:       config.Credentials.ClientID,
			ClientSecret:   config.Credentials.ClientSecret,
			TokenURL:       config.Credentials.OAuthURL,
			EndpointParams: params,
			AuthStyle:      oauth2.AuthStyleInParams,
		},
		httpClient: config.HTTPClient,
	}

	return p, nil
}

// Token returns a bearer token for the console API. A cached token is reused
// until it expires, otherwise a new one is requested with the given user
// agent.
func (p *Provider) Token(ctx context.Context, userAgent string) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.token.Valid() {
		return p.token.AccessToken, nil
	}

	p.logger.Debugf(ctx, "requesting console token from %s", p.config.TokenURL)

	client := &http.Client{
		Transport: &userAgentTransport{
			transport: transportOf(p.httpClient),
			userAgent: userAgent,
		},
		Timeout: p.httpClient.Timeout,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, client)

	token, err := p.config.Token(ctx)
	if err != nil {
		return "", microerror.Maskf(tokenRequestError, "%s", err)
	}
	if token.AccessToken == "" {
		return "", microerror.Maskf(tokenRequestError, "token endpoint returned an empty access token")
	}

	p.token = token

	return token.AccessToken, nil
}

type userAgentTransport struct {
	transport http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.transport.RoundTrip(req)
}

func transportOf(c *http.Client) http.RoundTripper {
	if c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}
