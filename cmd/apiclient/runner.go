package apiclient

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
	"github.com/camunda-community-hub/consolectl/pkg/export"
	"github.com/camunda-community-hub/consolectl/pkg/key"
)

type runner struct {
	flag    *flag
	console *console.Flag
	logger  micrologger.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func (r *runner) List(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.Validate, func(ctx context.Context, client *consoleclient.Client) error {
		clients, err := client.GetClients(ctx, r.flag.Cluster)
		if err != nil {
			return microerror.Mask(err)
		}

		return console.Print(r.stdout, r.console.Output, clients)
	})
}

func (r *runner) Get(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.Validate, func(ctx context.Context, client *consoleclient.Client) error {
		details, err := client.GetClient(ctx, r.flag.Cluster, args[0])
		if err != nil {
			return microerror.Mask(err)
		}

		return console.Print(r.stdout, r.console.Output, details)
	})
}

func (r *runner) Create(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.ValidateCreate, func(ctx context.Context, client *consoleclient.Client) error {
		req := consoleclient.CreateClientRequest{
			ClusterUUID: r.flag.Cluster,
			ClientName:  args[0],
			Permissions: canonicalPermissions(r.flag.Permissions),
		}

		r.logger.LogCtx(ctx, "message", fmt.Sprintf("creating API client %#q in cluster %s", req.ClientName, req.ClusterUUID), "permissions", fmt.Sprint(req.Permissions))

		created, err := client.CreateClient(ctx, req)
		if err != nil {
			return microerror.Mask(err)
		}

		return console.Print(r.stdout, r.console.Output, created)
	})
}

func (r *runner) Delete(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.Validate, func(ctx context.Context, client *consoleclient.Client) error {
		r.logger.LogCtx(ctx, "message", fmt.Sprintf("deleting API client %s from cluster %s", args[0], r.flag.Cluster))

		err := client.DeleteClient(ctx, r.flag.Cluster, args[0])
		if err != nil {
			return microerror.Mask(err)
		}

		return nil
	})
}

func (r *runner) Export(cmd *cobra.Command, args []string) error {
	return r.console.RunWith(cmd, r.logger, r.flag.ValidateExport, func(ctx context.Context, client *consoleclient.Client) error {
		details, err := client.GetClient(ctx, r.flag.Cluster, args[0])
		if err != nil {
			return microerror.Mask(err)
		}

		if details.ClusterID == "" {
			details.ClusterID = r.flag.Cluster
		}

		secret := export.Secret(*details, export.SecretOptions{
			Name:         r.flag.SecretName,
			Namespace:    r.flag.Namespace,
			ClientSecret: r.flag.ClientSecret,
		})

		if r.flag.Kubeconfig == "" {
			out, err := export.Render(secret)
			if err != nil {
				return microerror.Mask(err)
			}
			_, err = r.stdout.Write(out)
			if err != nil {
				return microerror.Mask(err)
			}
			return nil
		}

		k8sClient, err := newK8sClient(r.flag.Kubeconfig)
		if err != nil {
			return microerror.Mask(err)
		}

		var exporter *export.Exporter
		{
			c := export.Config{
				Logger:    r.logger,
				K8sClient: k8sClient,
			}

			exporter, err = export.New(c)
			if err != nil {
				return microerror.Mask(err)
			}
		}

		err = exporter.Apply(ctx, secret)
		if err != nil {
			return microerror.Mask(err)
		}

		r.logger.LogCtx(ctx, "message", fmt.Sprintf("applied secret %s/%s", secret.Namespace, secret.Name))

		return nil
	})
}

func canonicalPermissions(permissions []string) []string {
	result := make([]string, 0, len(permissions))
	for _, p := range permissions {
		canonical, ok := key.Permission(p)
		if !ok {
			canonical = p
		}
		result = append(result, canonical)
	}
	return result
}

func newK8sClient(kubeconfigPath string) (kubernetes.Interface, error) {
	kubeconfig, err := os.ReadFile(kubeconfigPath)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	config, err := clientcmd.NewClientConfigFromBytes(kubeconfig)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	restConfig, err := config.ClientConfig()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	k8sClient, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return k8sClient, nil
}
