package apiclient

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlagValidation(t *testing.T) {
	testCases := []struct {
		name         string
		flag         flag
		validate     func(f *flag) error
		errorMatcher func(error) bool
	}{
		{
			name:     "case 0: create with known permissions",
			flag:     flag{Cluster: "c1", Permissions: []string{"zeebe", "Operate"}},
			validate: (*flag).ValidateCreate,
		},
		{
			name:         "case 1: create with unknown permission",
			flag:         flag{Cluster: "c1", Permissions: []string{"Kafka"}},
			validate:     (*flag).ValidateCreate,
			errorMatcher: IsInvalidFlag,
		},
		{
			name:         "case 2: missing cluster",
			flag:         flag{},
			validate:     (*flag).Validate,
			errorMatcher: IsInvalidFlag,
		},
		{
			name:         "case 3: export to kubernetes without namespace",
			flag:         flag{Cluster: "c1", Kubeconfig: "/tmp/kubeconfig"},
			validate:     (*flag).ValidateExport,
			errorMatcher: IsInvalidFlag,
		},
		{
			name:     "case 4: export manifest without namespace",
			flag:     flag{Cluster: "c1"},
			validate: (*flag).ValidateExport,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			f := tc.flag
			err := tc.validate(&f)

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
		})
	}
}

func TestCanonicalPermissions(t *testing.T) {
	result := canonicalPermissions([]string{"zeebe", "OPERATE", "Tasklist"})
	expected := []string{"Zeebe", "Operate", "Tasklist"}

	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("permissions mismatch (-want +got):\n%s", diff)
	}
	if result := canonicalPermissions(nil); len(result) != 0 {
		t.Fatalf("expected no permissions, got %#v", result)
	}
}
