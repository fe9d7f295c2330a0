package consoleclient

type Reference struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type ClusterStatus struct {
	Ready          string `json:"ready,omitempty"`
	ZeebeStatus    string `json:"zeebeStatus,omitempty"`
	OperateStatus  string `json:"operateStatus,omitempty"`
	TasklistStatus string `json:"tasklistStatus,omitempty"`
	OptimizeStatus string `json:"optimizeStatus,omitempty"`
}

type ClusterLinks struct {
	Zeebe    string `json:"zeebe,omitempty"`
	Operate  string `json:"operate,omitempty"`
	Tasklist string `json:"tasklist,omitempty"`
	Optimize string `json:"optimize,omitempty"`
}

type Cluster struct {
	UUID       string            `json:"uuid"`
	Name       string            `json:"name"`
	Created    string            `json:"created,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	PlanType   Reference         `json:"planType"`
	K8sContext Reference         `json:"k8sContext"`
	Generation Reference         `json:"generation"`
	Channel    Reference         `json:"channel"`
	Status     ClusterStatus     `json:"status"`
	Links      ClusterLinks      `json:"links"`
}

type CreateClusterBody struct {
	Name         string `json:"name"`
	PlanTypeID   string `json:"planTypeId"`
	ChannelID    string `json:"channelId"`
	GenerationID string `json:"generationId"`
	RegionID     string `json:"regionId"`
}

type CreatedCluster struct {
	ClusterID string `json:"clusterId"`
}

type ClusterClient struct {
	Name     string `json:"name"`
	ClientID string `json:"clientId"`
}

// CreateClientRequest creates an API client for a cluster. Permissions may be
// empty.
type CreateClientRequest struct {
	ClusterUUID string
	ClientName  string
	Permissions []string
}

type createClientBody struct {
	ClientName  string   `json:"clientName"`
	Permissions []string `json:"permissions"`
}

type CreatedClusterClient struct {
	Name         string `json:"name,omitempty"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	// The fields below are only returned by newer API versions.
	ZeebeAddress string `json:"ZEEBE_ADDRESS,omitempty"`
	OAuthURL     string `json:"CAMUNDA_OAUTH_URL,omitempty"`
}

type ClusterClientConnectionDetails struct {
	Name                        string `json:"name"`
	ClientID                    string `json:"clientId"`
	ZeebeAddress                string `json:"ZEEBE_ADDRESS"`
	ZeebeClientID               string `json:"ZEEBE_CLIENT_ID"`
	ZeebeAuthorizationServerURL string `json:"ZEEBE_AUTHORIZATION_SERVER_URL"`
	ZeebeTokenAudience          string `json:"ZEEBE_TOKEN_AUDIENCE,omitempty"`
	ClusterID                   string `json:"CAMUNDA_CLUSTER_ID,omitempty"`
	ClusterRegion               string `json:"CAMUNDA_CLUSTER_REGION,omitempty"`
	CredentialsScopes           string `json:"CAMUNDA_CREDENTIALS_SCOPES,omitempty"`
	OAuthURL                    string `json:"CAMUNDA_OAUTH_URL,omitempty"`
}

type Channel struct {
	UUID               string      `json:"uuid"`
	Name               string      `json:"name"`
	IsDefault          bool        `json:"isDefault"`
	DefaultGeneration  Reference   `json:"defaultGeneration"`
	AllowedGenerations []Reference `json:"allowedGenerations"`
}

type PlanType struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	RegionID   string `json:"regionId,omitempty"`
	RegionName string `json:"regionName,omitempty"`
}

type Parameters struct {
	Channels         []Channel   `json:"channels"`
	ClusterPlanTypes []PlanType  `json:"clusterPlanTypes"`
	Regions          []Reference `json:"regions"`
}

// Secrets maps secret names to their values.
type Secrets map[string]string

type CreateSecretRequest struct {
	ClusterUUID string
	SecretName  string
	SecretValue string
}

type createSecretBody struct {
	SecretName  string `json:"secretName"`
	SecretValue string `json:"secretValue"`
}
