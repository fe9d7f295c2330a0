package consoleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"

	"github.com/camunda-community-hub/consolectl/pkg/credentials"
)

type countingTokenProvider struct {
	mutex sync.Mutex
	calls int
	err   error
}

func (p *countingTokenProvider) Token(ctx context.Context, userAgent string) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.err != nil {
		return "", p.err
	}
	p.calls++
	return fmt.Sprintf("token-%d", p.calls), nil
}

// fakeConsole is an in-memory stand-in for the cluster endpoints of the
// console API.
type fakeConsole struct {
	t *testing.T

	mutex    sync.Mutex
	clusters []Cluster
	clients  map[string][]ClusterClient
	secrets  map[string]Secrets
	nextID   int
	requests []*http.Request
	bodies   []string
}

func newFakeConsole(t *testing.T) *fakeConsole {
	return &fakeConsole{
		t: t,
		clusters: []Cluster{
			{UUID: "c1", Name: "dev", Status: ClusterStatus{Ready: "Healthy"}},
			{UUID: "c2", Name: "prod", Status: ClusterStatus{Ready: "Creating"}},
		},
		clients: map[string][]ClusterClient{},
		secrets: map[string]Secrets{},
	}
}

func (f *fakeConsole) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	var body string
	if r.Body != nil {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		body = string(raw)
	}
	f.requests = append(f.requests, r)
	f.bodies = append(f.bodies, body)

	if !strings.HasPrefix(r.URL.EscapedPath(), "/clusters") {
		http.NotFound(w, r)
		return
	}

	var segments []string
	for _, s := range strings.Split(strings.Trim(strings.TrimPrefix(r.URL.EscapedPath(), "/clusters"), "/"), "/") {
		if s == "" {
			continue
		}
		u, err := url.PathUnescape(s)
		if err != nil {
			f.t.Errorf("unescaping %q: %s", s, err)
		}
		segments = append(segments, u)
	}

	switch {
	case len(segments) == 0 && r.Method == http.MethodGet:
		writeJSON(w, f.clusters)
	case len(segments) == 0 && r.Method == http.MethodPost:
		var b CreateClusterBody
		_ = json.Unmarshal([]byte(body), &b)
		f.nextID++
		id := fmt.Sprintf("new-%d", f.nextID)
		f.clusters = append(f.clusters, Cluster{UUID: id, Name: b.Name})
		writeJSON(w, CreatedCluster{ClusterID: id})
	case len(segments) == 1 && segments[0] == "parameters":
		writeJSON(w, Parameters{
			Channels: []Channel{{
				UUID:               "ch1",
				Name:               "Stable",
				IsDefault:          true,
				DefaultGeneration:  Reference{UUID: "g1", Name: "Zeebe 8.3.1"},
				AllowedGenerations: []Reference{{UUID: "g1", Name: "Zeebe 8.3.1"}},
			}},
			ClusterPlanTypes: []PlanType{{UUID: "p1", Name: "Trial"}},
			Regions:          []Reference{{UUID: "r1", Name: "Belgium"}},
		})
	case len(segments) == 1 && r.Method == http.MethodGet:
		for _, c := range f.clusters {
			if c.UUID == segments[0] {
				writeJSON(w, c)
				return
			}
		}
		http.NotFound(w, r)
	case len(segments) == 1 && r.Method == http.MethodDelete:
		for i, c := range f.clusters {
			if c.UUID == segments[0] {
				f.clusters = append(f.clusters[:i], f.clusters[i+1:]...)
				return
			}
		}
		http.NotFound(w, r)
	case len(segments) == 2 && segments[1] == "clients" && r.Method == http.MethodGet:
		writeJSON(w, f.clients[segments[0]])
	case len(segments) == 2 && segments[1] == "clients" && r.Method == http.MethodPost:
		var b createClientBody
		_ = json.Unmarshal([]byte(body), &b)
		f.nextID++
		id := fmt.Sprintf("id%d", f.nextID)
		f.clients[segments[0]] = append(f.clients[segments[0]], ClusterClient{Name: b.ClientName, ClientID: id})
		writeJSON(w, CreatedClusterClient{Name: b.ClientName, ClientID: id, ClientSecret: "s3cr3t"})
	case len(segments) == 3 && segments[1] == "clients" && r.Method == http.MethodGet:
		for _, c := range f.clients[segments[0]] {
			if c.ClientID == segments[2] {
				writeJSON(w, ClusterClientConnectionDetails{
					Name:                        c.Name,
					ClientID:                    c.ClientID,
					ZeebeAddress:                segments[0] + ".bru-2.zeebe.camunda.io:443",
					ZeebeClientID:               c.ClientID,
					ZeebeAuthorizationServerURL: "https://login.cloud.camunda.io/oauth/token",
				})
				return
			}
		}
		http.NotFound(w, r)
	case len(segments) == 3 && segments[1] == "clients" && r.Method == http.MethodDelete:
		clients := f.clients[segments[0]]
		for i, c := range clients {
			if c.ClientID == segments[2] {
				f.clients[segments[0]] = append(clients[:i], clients[i+1:]...)
				return
			}
		}
		http.NotFound(w, r)
	case len(segments) == 2 && segments[1] == "secrets" && r.Method == http.MethodGet:
		secrets := f.secrets[segments[0]]
		if secrets == nil {
			secrets = Secrets{}
		}
		writeJSON(w, secrets)
	case len(segments) == 2 && segments[1] == "secrets" && r.Method == http.MethodPost:
		var b createSecretBody
		_ = json.Unmarshal([]byte(body), &b)
		if f.secrets[segments[0]] == nil {
			f.secrets[segments[0]] = Secrets{}
		}
		f.secrets[segments[0]][b.SecretName] = b.SecretValue
		w.WriteHeader(http.StatusCreated)
	case len(segments) == 3 && segments[1] == "secrets" && r.Method == http.MethodDelete:
		if _, ok := f.secrets[segments[0]][segments[2]]; !ok {
			http.NotFound(w, r)
			return
		}
		delete(f.secrets[segments[0]], segments[2])
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "unexpected request", http.StatusMethodNotAllowed)
	}
}

func (f *fakeConsole) lastRequest() (*http.Request, string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	n := len(f.requests)
	return f.requests[n-1], f.bodies[n-1]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, serverURL string, tokens TokenProvider) *Client {
	t.Helper()

	c, err := New(Config{
		Logger:        microloggertest.New(),
		TokenProvider: tokens,
		Credentials:   credentials.Credentials{BaseURL: serverURL},
		Version:       "1.2.0",
		UserAgent:     "testsuite",
	})
	if err != nil {
		t.Fatal(err)
	}

	return c
}
