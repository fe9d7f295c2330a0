// Package export turns API client connection details into Kubernetes
// secrets, so workers running in a cluster can pick them up as environment
// variables.
package export

import (
	"context"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/yaml"

	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
	"github.com/camunda-community-hub/consolectl/pkg/key"
	"github.com/camunda-community-hub/consolectl/pkg/project"
)

const (
	labelManagedBy = "app.kubernetes.io/managed-by"
	labelClusterID = "camunda.io/cluster-id"
	labelClientID  = "camunda.io/client-id"
)

type SecretOptions struct {
	// Name defaults to key.SecretName of the client name.
	Name      string
	Namespace string
	// ClientSecret is only known right after the client was created, the API
	// never returns it again.
	ClientSecret string
}

// Secret builds a Kubernetes secret holding the connection details. Empty
// details are left out.
func Secret(details consoleclient.ClusterClientConnectionDetails, options SecretOptions) *corev1.Secret {
	name := options.Name
	if name == "" {
		name = key.SecretName(details.Name)
	}

	data := map[string]string{}
	add := func(k, v string) {
		if v != "" {
			data[k] = v
		}
	}
	add("ZEEBE_ADDRESS", details.ZeebeAddress)
	add("ZEEBE_CLIENT_ID", details.ZeebeClientID)
	add("ZEEBE_CLIENT_SECRET", options.ClientSecret)
	add("ZEEBE_AUTHORIZATION_SERVER_URL", details.ZeebeAuthorizationServerURL)
	add("ZEEBE_TOKEN_AUDIENCE", details.ZeebeTokenAudience)
	add("CAMUNDA_CLUSTER_ID", details.ClusterID)
	add("CAMUNDA_CLUSTER_REGION", details.ClusterRegion)
	add("CAMUNDA_CREDENTIALS_SCOPES", details.CredentialsScopes)
	add("CAMUNDA_OAUTH_URL", details.OAuthURL)

	labels := map[string]string{
		labelManagedBy: project.Name(),
	}
	if details.ClusterID != "" {
		labels[labelClusterID] = details.ClusterID
	}
	if details.ClientID != "" {
		labels[labelClientID] = details.ClientID
	}

	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: options.Namespace,
			Labels:    labels,
		},
		Type:       corev1.SecretTypeOpaque,
		StringData: data,
	}
}

// Render returns the secret as a YAML manifest.
func Render(secret *corev1.Secret) ([]byte, error) {
	out, err := yaml.Marshal(secret)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	return out, nil
}

type Config struct {
	Logger    micrologger.Logger
	K8sClient kubernetes.Interface
}

type Exporter struct {
	logger    micrologger.Logger
	k8sClient kubernetes.Interface
}

func New(config Config) (*Exporter, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.K8sClient == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.K8sClient must not be empty", config)
	}

	e := &Exporter{
		logger:    config.Logger,
		k8sClient: config.K8sClient,
	}

	return e, nil
}

// Apply creates the secret, or replaces the data of an existing secret with
// the same name.
func (e *Exporter) Apply(ctx context.Context, secret *corev1.Secret) error {
	if secret.Namespace == "" {
		return microerror.Maskf(invalidConfigError, "secret %#q has no namespace", secret.Name)
	}

	secrets := e.k8sClient.CoreV1().Secrets(secret.Namespace)

	e.logger.Debugf(ctx, "creating secret %s/%s", secret.Namespace, secret.Name)

	_, err := secrets.Create(ctx, secret, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		e.logger.Debugf(ctx, "secret %s/%s already exists, updating", secret.Namespace, secret.Name)

		current, err := secrets.Get(ctx, secret.Name, metav1.GetOptions{})
		if err != nil {
			return microerror.Mask(err)
		}

		updated := current.DeepCopy()
		updated.Labels = secret.Labels
		updated.Type = secret.Type
		updated.Data = nil
		updated.StringData = secret.StringData

		_, err = secrets.Update(ctx, updated, metav1.UpdateOptions{})
		if err != nil {
			return microerror.Mask(err)
		}
	} else if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
