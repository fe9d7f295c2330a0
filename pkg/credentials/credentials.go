// Package credentials loads the Camunda Console API configuration from the
// environment or from a profile file.
package credentials

import (
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/giantswarm/microerror"
	"sigs.k8s.io/yaml"
)

const (
	DefaultBaseURL  = "https://api.cloud.camunda.io"
	DefaultOAuthURL = "https://login.cloud.camunda.io/oauth/token"
	DefaultAudience = "api.cloud.camunda.io"
)

type Credentials struct {
	BaseURL      string `json:"baseUrl" env:"CAMUNDA_CONSOLE_BASE_URL" envDefault:"https://api.cloud.camunda.io"`
	ClientID     string `json:"clientId" env:"CAMUNDA_CONSOLE_CLIENT_ID"`
	ClientSecret string `json:"clientSecret" env:"CAMUNDA_CONSOLE_CLIENT_SECRET"` //pragma: allowlist secret
	OAuthURL     string `json:"oauthUrl" env:"CAMUNDA_OAUTH_URL" envDefault:"https://login.cloud.camunda.io/oauth/token"`
	Audience     string `json:"audience" env:"CAMUNDA_CONSOLE_OAUTH_AUDIENCE" envDefault:"api.cloud.camunda.io"`
}

// FromEnv reads the credentials from the process environment and validates
// them.
func FromEnv() (Credentials, error) {
	var c Credentials
	err := env.Parse(&c)
	if err != nil {
		return Credentials{}, microerror.Maskf(invalidConfigError, "parsing environment: %s", err)
	}

	err = c.Validate()
	if err != nil {
		return Credentials{}, microerror.Mask(err)
	}

	return c, nil
}

// FromMap behaves like FromEnv but reads variables from the given map instead
// of the process environment.
func FromMap(environment map[string]string) (Credentials, error) {
	c, err := parse(environment)
	if err != nil {
		return Credentials{}, microerror.Mask(err)
	}

	err = c.Validate()
	if err != nil {
		return Credentials{}, microerror.Mask(err)
	}

	return c, nil
}

// LoadProfile reads a YAML file of named profiles. Fields left empty in the
// profile are taken from the environment, or from the defaults.
//
//	production:
//	  clientId: abc
//	  clientSecret: def
func LoadProfile(path string, profile string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, microerror.Mask(err)
	}

	return parseProfile(data, profile, envMap())
}

func parseProfile(data []byte, profile string, environment map[string]string) (Credentials, error) {
	profiles := map[string]Credentials{}
	err := yaml.UnmarshalStrict(data, &profiles)
	if err != nil {
		return Credentials{}, microerror.Maskf(invalidConfigError, "parsing profiles: %s", err)
	}

	p, ok := profiles[profile]
	if !ok {
		return Credentials{}, microerror.Maskf(invalidConfigError, "missing profile %#q", profile)
	}

	c, err := parse(environment)
	if err != nil {
		return Credentials{}, microerror.Mask(err)
	}
	c.merge(p)

	err = c.Validate()
	if err != nil {
		return Credentials{}, microerror.Maskf(invalidConfigError, "profile %#q: %s", profile, err)
	}

	return c, nil
}

// Validate checks that everything needed to talk to the API is present.
func (c Credentials) Validate() error {
	if c.BaseURL == "" {
		return microerror.Maskf(invalidConfigError, "CAMUNDA_CONSOLE_BASE_URL must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return microerror.Maskf(invalidConfigError, "CAMUNDA_CONSOLE_BASE_URL %#q is not an absolute URL", c.BaseURL)
	}
	if c.ClientID == "" {
		return microerror.Maskf(invalidConfigError, "CAMUNDA_CONSOLE_CLIENT_ID must not be empty")
	}
	if c.ClientSecret == "" {
		return microerror.Maskf(invalidConfigError, "CAMUNDA_CONSOLE_CLIENT_SECRET must not be empty")
	}
	if c.OAuthURL == "" {
		return microerror.Maskf(invalidConfigError, "CAMUNDA_OAUTH_URL must not be empty")
	}

	return nil
}

func (c *Credentials) merge(o Credentials) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.ClientID != "" {
		c.ClientID = o.ClientID
	}
	if o.ClientSecret != "" {
		c.ClientSecret = o.ClientSecret
	}
	if o.OAuthURL != "" {
		c.OAuthURL = o.OAuthURL
	}
	if o.Audience != "" {
		c.Audience = o.Audience
	}
}

func parse(environment map[string]string) (Credentials, error) {
	var c Credentials
	err := env.ParseWithOptions(&c, env.Options{Environment: environment})
	if err != nil {
		return Credentials{}, microerror.Maskf(invalidConfigError, "parsing environment: %s", err)
	}
	return c, nil
}

func envMap() map[string]string {
	return env.ToMap(os.Environ())
}
