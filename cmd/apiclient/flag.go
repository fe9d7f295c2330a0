package apiclient

import (
	"github.com/giantswarm/microerror"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/pkg/key"
)

const (
	flagCluster      = "cluster"
	flagClientSecret = "client-secret"
	flagKubeconfig   = "kubeconfig"
	flagNamespace    = "namespace"
	flagPermission   = "permission"
	flagSecretName   = "secret-name"
)

type flag struct {
	Cluster      string
	ClientSecret string
	Kubeconfig   string
	Namespace    string
	Permissions  []string
	SecretName   string
}

func (f *flag) Init(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Cluster, flagCluster, "", `The UUID of the cluster the API clients belong to.`)
}

func (f *flag) InitCreate(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.Permissions, flagPermission, nil, permissionsHelp())
}

func (f *flag) InitExport(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ClientSecret, flagClientSecret, "", `The client secret to include. The API does not return it after creation.`)
	cmd.Flags().StringVarP(&f.Kubeconfig, flagKubeconfig, "k", "", `The path to the kubeconfig of the cluster to create the secret in.`)
	cmd.Flags().StringVarP(&f.Namespace, flagNamespace, "n", "", `The namespace of the secret.`)
	cmd.Flags().StringVar(&f.SecretName, flagSecretName, "", `The name of the secret. Derived from the client name when empty.`)
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
	for _, p := range f.Permissions {
		if !key.IsValidPermission(p) {
			return microerror.Maskf(invalidFlagError, "--%s %#q is not a known permission", flagPermission, p)
		}
	}

	return nil
}

func (f *flag) ValidateExport() error {
	err := f.Validate()
	if err != nil {
		return microerror.Mask(err)
	}
	if f.Kubeconfig != "" && f.Namespace == "" {
		return microerror.Maskf(invalidFlagError, "--%s is required when --%s is given", flagNamespace, flagKubeconfig)
	}

	return nil
}
