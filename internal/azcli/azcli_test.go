package azcli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner resolves canned results by the joined argument vector.
type fakeRunner struct {
	results map[string]Result
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) Result {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if res, ok := f.results[key]; ok {
		return res
	}
	return Result{ExitCode: 1, Stderr: "unexpected command: " + key}
}

func TestListSubscriptions(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"account list --output json": {Stdout: `[{"id":"sub1","name":"Sub One"},{"id":"sub2","name":"Sub Two"}]`},
	}}
	cli := NewClient(runner)

	subs, err := cli.ListSubscriptions(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "sub1", subs[0].ID)
	assert.Equal(t, "Sub One", subs[0].Name)
}

func TestListSubscriptionsInvalidJSON(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"account list --output json": {Stdout: `not json`},
	}}
	cli := NewClient(runner)

	_, err := cli.ListSubscriptions(context.Background())
	assert.Error(t, err)
}

func TestListSubscriptionsMissingRequiredField(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"account list --output json": {Stdout: `[{"id":"sub1"}]`},
	}}
	cli := NewClient(runner)

	_, err := cli.ListSubscriptions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required field")
}

func TestListResourceGroups(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"group list --subscription sub1 --output json": {Stdout: `[{"name":"rg-a","id":"/subscriptions/sub1/resourceGroups/rg-a"}]`},
	}}
	cli := NewClient(runner)

	groups, err := cli.ListResourceGroups(context.Background(), "sub1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "rg-a", groups[0].Name)
}

func TestListResourceGroupsNonZeroExit(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"group list --subscription sub1 --output json": {ExitCode: 1, Stderr: "AuthorizationFailed"},
	}}
	cli := NewClient(runner)

	_, err := cli.ListResourceGroups(context.Background(), "sub1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthorizationFailed")
}

func TestDeleteResourceGroupArgs(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"group delete --name rg-a --subscription sub1 --yes --no-wait": {},
	}}
	cli := NewClient(runner)

	res := cli.DeleteResourceGroup(context.Background(), "rg-a", "sub1")
	assert.True(t, res.OK())
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "--no-wait")
	assert.Contains(t, runner.calls[0], "--yes")
}

func TestChecks(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{
		"version":      {Stdout: `{"azure-cli": "2.60.0"}`},
		"account show": {Stdout: `{"id":"sub1"}`},
	}}
	cli := NewClient(runner)

	assert.NoError(t, cli.CheckInstalled(context.Background()))
	assert.NoError(t, cli.CheckSession(context.Background()))
}

func TestChecksFail(t *testing.T) {
	runner := &fakeRunner{results: map[string]Result{}}
	cli := NewClient(runner)

	assert.Error(t, cli.CheckInstalled(context.Background()))
	assert.Error(t, cli.CheckSession(context.Background()))
}
