package key

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	UserAgentPrefix = "console-client-go"

	HeaderAccept        = "accept"
	HeaderAuthorization = "authorization"
	HeaderContentType   = "content-type"
	HeaderUserAgent     = "user-agent"

	AcceptAny       = "*/*"
	ContentTypeJSON = "application/json"

	// GenerationLatest selects the newest generation a channel allows.
	GenerationLatest = "latest"

	ClusterStatusHealthy = "Healthy"
)

const (
	PermissionZeebe    = "Zeebe"
	PermissionOperate  = "Operate"
	PermissionTasklist = "Tasklist"
	PermissionOptimize = "Optimize"
	PermissionSecrets  = "Secrets"
)

var permissions = []string{
	PermissionZeebe,
	PermissionOperate,
	PermissionTasklist,
	PermissionOptimize,
	PermissionSecrets,
}

func AllPermissions() []string {
	// Return a copy so callers can't change the global list.
	result := make([]string, len(permissions))
	copy(result, permissions)
	return result
}

func IsValidPermission(candidate string) bool {
	_, ok := Permission(candidate)
	return ok
}

// Permission returns the spelling the API expects for a case insensitive
// permission name.
func Permission(candidate string) (string, bool) {
	for _, p := range permissions {
		if strings.EqualFold(candidate, p) {
			return p, true
		}
	}
	return "", false
}

// UserAgent builds the user agent sent with every request, e.g.
// "console-client-go/1.2.0 my-tool/0.1".
func UserAgent(version, suffix string) string {
	ua := fmt.Sprintf("%s/%s", UserAgentPrefix, version)
	if suffix != "" {
		ua += " " + suffix
	}
	return ua
}

func BearerToken(token string) string {
	return "Bearer " + token
}

func ClustersURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/clusters"
}

// SecretName is the name of the Kubernetes secret holding the connection
// details of an API client.
func SecretName(clientName string) string {
	name := strings.ToLower(clientName)
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return '-'
	}, name)
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "client"
	}
	return fmt.Sprintf("camunda-%s-credentials", name)
}

// GenerationVersion extracts the semantic version from a generation name such
// as "Zeebe 8.3.1" or "8.4.0-alpha2". ok is false when no version is found.
func GenerationVersion(name string) (*semver.Version, bool) {
	fields := strings.Fields(name)
	for i := len(fields) - 1; i >= 0; i-- {
		v, err := semver.NewVersion(strings.TrimPrefix(fields[i], "v"))
		if err == nil {
			return v, true
		}
	}
	return nil, false
}

// LatestGeneration returns the id of the generation with the highest semantic
// version. Names without a version are ignored. ok is false when none of the
// names carry a version.
func LatestGeneration(generations map[string]string) (id string, ok bool) {
	type candidate struct {
		id      string
		version *semver.Version
	}

	var candidates []candidate
	for genID, name := range generations {
		v, found := GenerationVersion(name)
		if !found {
			continue
		}
		candidates = append(candidates, candidate{id: genID, version: v})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].version.Equal(candidates[j].version) {
			return candidates[i].id < candidates[j].id
		}
		return candidates[i].version.GreaterThan(candidates[j].version)
	})

	return candidates[0].id, true
}
