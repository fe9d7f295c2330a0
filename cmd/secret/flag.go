package secret

import (
	"github.com/giantswarm/microerror"
	"github.com/spf13/cobra"
)

const (
	flagCluster      = "cluster"
	flagValue        = "value"
	flagValueFromEnv = "value-from-env"
)

type flag struct {
	Cluster      string
	Value        string
	ValueFromEnv string
}

func (f *flag) Init(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Cluster, flagCluster, "", `The UUID of the cluster the secrets belong to.`)
}

func (f *flag) InitCreate(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Value, flagValue, "", `The value of the secret.`)
	cmd.Flags().StringVar(&f.ValueFromEnv, flagValueFromEnv, "", `The name of an environment variable holding the value, keeps it out of the shell history.`)
}

func (f *flag) Validate() error {
	if f.Cluster == "" {
		return microerror.Maskf(invalidFlagError, "--%s is required", flagCluster)
	}

	return nil
}

func (f *flag) ValidateCreate() error {
	err := f.Validate()
	if err != nil {
		return microerror.Mask(err)
	}
	if f.Value != "" && f.ValueFromEnv != "" {
		return microerror.Maskf(invalidFlagError, "--%s and --%s are mutually exclusive", flagValue, flagValueFromEnv)
	}
	if f.Value == "" && f.ValueFromEnv == "" {
		return microerror.Maskf(invalidFlagError, "one of --%s or --%s is required", flagValue, flagValueFromEnv)
	}

	return nil
}
