package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"
)

func newRoot(t *testing.T, stdout *bytes.Buffer) *Config {
	t.Helper()

	return &Config{
		Logger: microloggertest.New(),
		Stderr: &bytes.Buffer{},
		Stdout: stdout,

		GitCommit: "abc123",
		Source:    "https://github.com/camunda-community-hub/consolectl",
	}
}

func TestCommandTree(t *testing.T) {
	var stdout bytes.Buffer
	c, err := New(*newRoot(t, &stdout))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"cluster list",
		"cluster get",
		"cluster create",
		"cluster delete",
		"client list",
		"client get",
		"client create",
		"client delete",
		"client export",
		"secret list",
		"secret create",
		"secret delete",
		"parameters",
		"version",
	}

	for _, path := range expected {
		found, _, err := c.Find(strings.Fields(path))
		if err != nil {
			t.Fatalf("%s: %s", path, err)
		}
		if found.Name() != strings.Fields(path)[len(strings.Fields(path))-1] {
			t.Fatalf("%s: found %s", path, found.CommandPath())
		}
	}
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	c, err := New(*newRoot(t, &stdout))
	if err != nil {
		t.Fatal(err)
	}

	c.SetArgs([]string{"version"})
	err = c.Execute()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "Git Commit: abc123") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "User Agent: console-client-go/") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestInvalidOutputIsRejected(t *testing.T) {
	var stdout bytes.Buffer
	c, err := New(*newRoot(t, &stdout))
	if err != nil {
		t.Fatal(err)
	}

	c.SetArgs([]string{"parameters", "--output", "table"})
	err = c.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
}

func TestNewRequiresGitCommit(t *testing.T) {
	config := *newRoot(t, &bytes.Buffer{})
	config.GitCommit = ""

	_, err := New(config)
	if !IsInvalidConfig(err) {
		t.Fatalf("error == %#v, want invalid config", err)
	}
}
