package cluster

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
)

var parameters = &consoleclient.Parameters{
	Channels: []consoleclient.Channel{
		{
			UUID:              "ch-alpha",
			Name:              "Alpha",
			DefaultGeneration: consoleclient.Reference{UUID: "g-840a", Name: "Zeebe 8.4.0-alpha2"},
			AllowedGenerations: []consoleclient.Reference{
				{UUID: "g-840a", Name: "Zeebe 8.4.0-alpha2"},
			},
		},
		{
			UUID:              "ch-stable",
			Name:              "Stable",
			IsDefault:         true,
			DefaultGeneration: consoleclient.Reference{UUID: "g-831", Name: "Zeebe 8.3.1"},
			AllowedGenerations: []consoleclient.Reference{
				{UUID: "g-831", Name: "Zeebe 8.3.1"},
				{UUID: "g-834", Name: "Zeebe 8.3.4"},
				{UUID: "g-8219", Name: "Zeebe 8.2.19"},
			},
		},
	},
	ClusterPlanTypes: []consoleclient.PlanType{
		{UUID: "p-trial", Name: "Trial Cluster", RegionID: "r-bru"},
		{UUID: "p-prod", Name: "Production S"},
	},
	Regions: []consoleclient.Reference{
		{UUID: "r-bru", Name: "Belgium, Europe (europe-west1)"},
		{UUID: "r-iowa", Name: "Iowa, North America (us-central1)"},
	},
}

func TestResolveCreateBody(t *testing.T) {
	testCases := []struct {
		name         string
		flag         flag
		expected     consoleclient.CreateClusterBody
		errorMatcher func(error) bool
	}{
		{
			name: "case 0: defaults from channel and plan",
			flag: flag{Name: "dev", Plan: "Trial Cluster"},
			expected: consoleclient.CreateClusterBody{
				Name:         "dev",
				PlanTypeID:   "p-trial",
				ChannelID:    "ch-stable",
				GenerationID: "g-831",
				RegionID:     "r-bru",
			},
		},
		{
			name: "case 1: latest generation and explicit region by uuid",
			flag: flag{Name: "dev", Plan: "p-prod", Generation: "latest", Region: "r-iowa"},
			expected: consoleclient.CreateClusterBody{
				Name:         "dev",
				PlanTypeID:   "p-prod",
				ChannelID:    "ch-stable",
				GenerationID: "g-834",
				RegionID:     "r-iowa",
			},
		},
		{
			name: "case 2: explicit channel and generation by name",
			flag: flag{Name: "dev", Plan: "trial cluster", Channel: "alpha", Generation: "Zeebe 8.4.0-alpha2"},
			expected: consoleclient.CreateClusterBody{
				Name:         "dev",
				PlanTypeID:   "p-trial",
				ChannelID:    "ch-alpha",
				GenerationID: "g-840a",
				RegionID:     "r-bru",
			},
		},
		{
			name:         "case 3: unknown plan",
			flag:         flag{Name: "dev", Plan: "Enterprise"},
			errorMatcher: IsParameterNotFound,
		},
		{
			name:         "case 4: generation not allowed in channel",
			flag:         flag{Name: "dev", Plan: "p-trial", Generation: "g-840a"},
			errorMatcher: IsParameterNotFound,
		},
		{
			name:         "case 5: region required for plans without one",
			flag:         flag{Name: "dev", Plan: "p-prod"},
			errorMatcher: IsInvalidFlag,
		},
		{
			name:         "case 6: unknown region",
			flag:         flag{Name: "dev", Plan: "p-prod", Region: "Mars"},
			errorMatcher: IsParameterNotFound,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			f := tc.flag
			result, err := resolveCreateBody(parameters, &f)

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

			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Fatalf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
