package azcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Subscription identifies one billing/isolation boundary returned by
// `az account list`. Both fields are required at the parse boundary.
type Subscription struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResourceGroup is one deletable group from `az group list`.
// ID is the full ARM resource id, kept for display only.
type ResourceGroup struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Client exposes the typed az operations rgsweep needs.
type Client struct {
	runner Runner
}

// NewClient returns a Client over the given runner, defaulting to the
// real az executable when runner is nil.
func NewClient(runner Runner) *Client {
	if runner == nil {
		runner = NewRunner()
	}
	return &Client{runner: runner}
}

// CheckInstalled verifies the Azure CLI is present and runnable.
func (c *Client) CheckInstalled(ctx context.Context) error {
	if res := c.runner.Run(ctx, "version"); !res.OK() {
		return fmt.Errorf("az version failed: %s", firstLine(res.Stderr))
	}
	return nil
}

// CheckSession verifies an active authenticated Azure session exists.
func (c *Client) CheckSession(ctx context.Context) error {
	if res := c.runner.Run(ctx, "account", "show"); !res.OK() {
		return fmt.Errorf("az account show failed: %s", firstLine(res.Stderr))
	}
	return nil
}

// ListSubscriptions returns every subscription visible to the session.
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	res := c.runner.Run(ctx, "account", "list", "--output", "json")
	if !res.OK() {
		return nil, fmt.Errorf("az account list: %s", firstLine(res.Stderr))
	}

	var subs []Subscription
	if err := json.Unmarshal([]byte(res.Stdout), &subs); err != nil {
		return nil, fmt.Errorf("invalid subscription list JSON: %w", err)
	}
	for i, s := range subs {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("subscription record %d is missing a required field (id/name)", i)
		}
	}
	return subs, nil
}

// ListResourceGroups returns the resource groups of one subscription.
func (c *Client) ListResourceGroups(ctx context.Context, subscriptionID string) ([]ResourceGroup, error) {
	res := c.runner.Run(ctx, "group", "list", "--subscription", subscriptionID, "--output", "json")
	if !res.OK() {
		return nil, fmt.Errorf("az group list --subscription %s: %s", subscriptionID, firstLine(res.Stderr))
	}

	var groups []ResourceGroup
	if err := json.Unmarshal([]byte(res.Stdout), &groups); err != nil {
		return nil, fmt.Errorf("invalid resource group list JSON for subscription %s: %w", subscriptionID, err)
	}
	for i, g := range groups {
		if g.Name == "" {
			return nil, fmt.Errorf("resource group record %d in subscription %s is missing a name", i, subscriptionID)
		}
	}
	return groups, nil
}

// DeleteResourceGroup requests deletion of one resource group.
// --no-wait makes az acknowledge acceptance rather than completion, and
// --yes suppresses az's own confirmation prompt; rgsweep confirms upfront.
func (c *Client) DeleteResourceGroup(ctx context.Context, name, subscriptionID string) Result {
	return c.runner.Run(ctx, "group", "delete",
		"--name", name,
		"--subscription", subscriptionID,
		"--yes", "--no-wait")
}

// firstLine trims a CLI error blob down to its first non-empty line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "unknown error"
}
