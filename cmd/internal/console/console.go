// Package console holds the flags and helpers shared by all commands talking
// to the console API.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
	"github.com/camunda-community-hub/consolectl/pkg/credentials"
	"github.com/camunda-community-hub/consolectl/pkg/oauth"
	"github.com/camunda-community-hub/consolectl/pkg/project"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"

	flagConfig    = "config"
	flagOutput    = "output"
	flagProfile   = "profile"
	flagUserAgent = "user-agent"
)

type Flag struct {
	Config    string
	Output    string
	Profile   string
	UserAgent string
}

// Init registers the flags as persistent flags, so every sub command
// inherits them.
func (f *Flag) Init(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Config, flagConfig, "c", "", `The path to a YAML file with credential profiles. Credentials are read from CAMUNDA_CONSOLE_* environment variables when empty.`)
	cmd.PersistentFlags().StringVarP(&f.Output, flagOutput, "o", OutputJSON, fmt.Sprintf(`The output format. Possible values: <%s|%s>`, OutputJSON, OutputYAML))
	cmd.PersistentFlags().StringVarP(&f.Profile, flagProfile, "p", "default", `The profile to use from the --config file.`)
	cmd.PersistentFlags().StringVar(&f.UserAgent, flagUserAgent, "", `A custom suffix for the user agent sent to the API.`)
}

func (f *Flag) Validate() error {
	if f.Output != OutputJSON && f.Output != OutputYAML {
		return microerror.Maskf(invalidFlagError, "--%s must be one of %#q or %#q", flagOutput, OutputJSON, OutputYAML)
	}
	if f.Config != "" && f.Profile == "" {
		return microerror.Maskf(invalidFlagError, "--%s must not be empty when --%s is given", flagProfile, flagConfig)
	}

	return nil
}

// Credentials loads the credentials selected by the flags.
func (f *Flag) Credentials() (credentials.Credentials, error) {
	if f.Config != "" {
		c, err := credentials.LoadProfile(f.Config, f.Profile)
		if err != nil {
			return credentials.Credentials{}, microerror.Mask(err)
		}
		return c, nil
	}

	c, err := credentials.FromEnv()
	if err != nil {
		return credentials.Credentials{}, microerror.Mask(err)
	}
	return c, nil
}

// NewClient wires the credentials loader and token provider into a console
// API client.
func (f *Flag) NewClient(logger micrologger.Logger) (*consoleclient.Client, error) {
	creds, err := f.Credentials()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	var tokenProvider *oauth.Provider
	{
		c := oauth.Config{
			Logger:      logger,
			Credentials: creds,
		}

		tokenProvider, err = oauth.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var client *consoleclient.Client
	{
		c := consoleclient.Config{
			Logger:        logger,
			TokenProvider: tokenProvider,

			Credentials: creds,
			UserAgent:   f.UserAgent,
			Version:     project.Version(),
		}

		client, err = consoleclient.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return client, nil
}

// RunWith validates the console flags and the command specific flags, builds
// a client and hands it to run. validate may be nil.
func (f *Flag) RunWith(cmd *cobra.Command, logger micrologger.Logger, validate func() error, run func(ctx context.Context, client *consoleclient.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err := f.Validate()
	if err != nil {
		return microerror.Mask(err)
	}
	if validate != nil {
		err = validate()
		if err != nil {
			return microerror.Mask(err)
		}
	}

	client, err := f.NewClient(logger)
	if err != nil {
		return microerror.Mask(err)
	}

	err = run(ctx, client)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

// Print writes v to w in the requested output format.
func Print(w io.Writer, output string, v interface{}) error {
	var out []byte
	var err error

	switch output {
	case OutputYAML:
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return microerror.Mask(err)
	}

	_, err = w.Write(out)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
