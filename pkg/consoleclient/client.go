package consoleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/go-resty/resty/v2"

	"github.com/camunda-community-hub/consolectl/pkg/credentials"
	"github.com/camunda-community-hub/consolectl/pkg/key"
	"github.com/camunda-community-hub/consolectl/pkg/project"
)

// TokenProvider hands out bearer tokens for the console API. Implementations
// own any caching and refreshing of tokens.
type TokenProvider interface {
	Token(ctx context.Context, userAgent string) (string, error)
}

type Config struct {
	Logger        micrologger.Logger
	TokenProvider TokenProvider

	// Credentials as loaded by the credentials package. Only BaseURL is used
	// here, the rest is the token provider's business.
	Credentials credentials.Credentials
	// UserAgent is an optional suffix appended to the default user agent.
	UserAgent string
	// Version is the client version advertised in the user agent. Defaults to
	// project.Version().
	Version string
	// HTTPClient overrides the underlying transport.
	HTTPClient *http.Client
}

// Client talks to the cluster resources of the Camunda Console API. All
// fields are immutable after New, so a Client can be shared between
// goroutines.
type Client struct {
	logger        micrologger.Logger
	tokenProvider TokenProvider

	prefixURL string
	userAgent string

	resty *resty.Client
}

func New(config Config) (*Client, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.TokenProvider == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.TokenProvider must not be empty", config)
	}
	if config.Credentials.BaseURL == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.BaseURL must not be empty", config)
	}
	if config.Version == "" {
		config.Version = project.Version()
	}

	u, err := url.Parse(config.Credentials.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, microerror.Maskf(invalidConfigError, "API base URL %#q could not be parsed", config.Credentials.BaseURL)
	}

	prefixURL := key.ClustersURL(config.Credentials.BaseURL)

	var r *resty.Client
	if config.HTTPClient != nil {
		r = resty.NewWithClient(config.HTTPClient)
	} else {
		r = resty.New()
	}
	r.SetBaseURL(prefixURL)
	r.SetLogger(&restyLogger{logger: config.Logger})

	config.Logger.Debugf(context.Background(), "using console API prefix %s", prefixURL)

	c := &Client{
		logger:        config.Logger,
		tokenProvider: config.TokenProvider,

		prefixURL: prefixURL,
		userAgent: key.UserAgent(config.Version, config.UserAgent),

		resty: r,
	}

	return c, nil
}

// UserAgent returns the user agent sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// PrefixURL returns the URL all request paths are relative to.
func (c *Client) PrefixURL() string {
	return c.prefixURL
}

// headers fetches a token for every call. The client never caches tokens.
func (c *Client) headers(ctx context.Context) (Headers, error) {
	token, err := c.tokenProvider.Token(ctx, c.userAgent)
	if err != nil {
		return Headers{}, microerror.Maskf(authenticationError, "fetching console token: %s", err)
	}
	if token == "" {
		return Headers{}, microerror.Maskf(authenticationError, "token provider returned an empty token")
	}

	return NewHeaders(token, c.userAgent), nil
}

type request struct {
	method     string
	path       string
	pathParams map[string]string
	body       interface{}
}

// do sends one request and decodes the response body into result, which may
// be nil for endpoints without a meaningful response. An empty or null 2xx
// body leaves result untouched, so getters return a zero value and no error.
func (c *Client) do(ctx context.Context, r request, result interface{}) error {
	headers, err := c.headers(ctx)
	if err != nil {
		return microerror.Mask(err)
	}

	req := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers.Map()).
		SetPathParams(r.pathParams)
	if r.body != nil {
		req.SetBody(r.body)
	}

	c.logger.Debugf(ctx, "sending %s %s", r.method, r.path)

	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		return microerror.Maskf(transportError, "%s %s: %s", r.method, r.path, err)
	}

	c.logger.Debugf(ctx, "received %d for %s %s", resp.StatusCode(), r.method, r.path)

	if !resp.IsSuccess() {
		return microerror.Mask(&APIError{
			Method:     r.method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Body(),
		})
	}

	if result == nil || isEmptyBody(resp.Body()) {
		return nil
	}

	err = json.Unmarshal(resp.Body(), result)
	if err != nil {
		return microerror.Maskf(decodeError, "%s %s: %s", r.method, r.path, err)
	}

	return nil
}

func isEmptyBody(body []byte) bool {
	body = bytes.TrimSpace(body)
	return len(body) == 0 || bytes.Equal(body, []byte("null"))
}

type restyLogger struct {
	logger micrologger.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.LogCtx(context.Background(), "level", "error", "message", fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.LogCtx(context.Background(), "level", "warning", "message", fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debugf(context.Background(), format, v...)
}
