package parameters

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"

	"github.com/camunda-community-hub/consolectl/cmd/internal/console"
	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
)

type fakeParameters struct {
	parameters *consoleclient.Parameters
	err        error
}

func (f *fakeParameters) GetParameters(ctx context.Context) (*consoleclient.Parameters, error) {
	return f.parameters, f.err
}

func TestRun(t *testing.T) {
	parameters := &consoleclient.Parameters{
		Channels: []consoleclient.Channel{
			{UUID: "ch-stable", Name: "Stable", IsDefault: true},
		},
		ClusterPlanTypes: []consoleclient.PlanType{
			{UUID: "p-trial", Name: "Trial Cluster", RegionID: "r-bru"},
		},
		Regions: []consoleclient.Reference{
			{UUID: "r-bru", Name: "Belgium"},
		},
	}

	testCases := []struct {
		name           string
		output         string
		fake           *fakeParameters
		expectedOutput string
		errorMatcher   func(error) bool
	}{
		{
			name:   "case 0: yaml output",
			output: console.OutputYAML,
			fake:   &fakeParameters{parameters: parameters},
			expectedOutput: `channels:
- allowedGenerations: null
  defaultGeneration:
    name: ""
    uuid: ""
  isDefault: true
  name: Stable
  uuid: ch-stable
clusterPlanTypes:
- name: Trial Cluster
  regionId: r-bru
  uuid: p-trial
regions:
- name: Belgium
  uuid: r-bru
`,
		},
		{
			name:   "case 1: empty parameters as json",
			output: console.OutputJSON,
			fake:   &fakeParameters{parameters: &consoleclient.Parameters{}},
			expectedOutput: `{
  "channels": null,
  "clusterPlanTypes": null,
  "regions": null
}
`,
		},
		{
			name:         "case 2: api errors are returned",
			output:       console.OutputJSON,
			fake:         &fakeParameters{err: &consoleclient.APIError{StatusCode: http.StatusForbidden}},
			errorMatcher: consoleclient.IsForbidden,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			var stdout bytes.Buffer
			r := &runner{
				console: &console.Flag{Output: tc.output},
				logger:  microloggertest.New(),
				stdout:  &stdout,
				stderr:  &bytes.Buffer{},
			}

			err := r.run(context.Background(), tc.fake)

			switch {
			case err == nil && tc.errorMatcher == nil:
				// correct; carry on
			case err != nil && tc.errorMatcher == nil:
				t.Fatalf("error == %#v, want nil", err)
			case err == nil && tc.errorMatcher != nil:
				t.Fatalf("error == nil, want non-nil")
			case !tc.errorMatcher(err):
				t.Fatalf("error == %#v, want matching", err)
			}

			if stdout.String() != tc.expectedOutput {
				t.Fatalf("expected %q, got %q", tc.expectedOutput, stdout.String())
			}
		})
	}
}
