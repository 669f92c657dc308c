// Package inventory collects the resource groups of every subscription
// visible to the active az session into a flat, in-memory list.
package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/kjourdan1/rgsweep/internal/azcli"
	"github.com/kjourdan1/rgsweep/internal/output"
)

// Precondition failures abort the run before any listing begins.
var (
	ErrNotInstalled     = errors.New("azure cli is not installed or not on PATH")
	ErrNotAuthenticated = errors.New("no active azure session")
)

// ErrNoSubscriptions aborts the run when the subscription listing fails or
// comes back empty; with no subscriptions there is nothing to sweep.
var ErrNoSubscriptions = errors.New("no subscriptions available")

// Group is one deletable resource group qualified by its subscription.
// ProviderID is the opaque ARM id, carried for display only.
type Group struct {
	Name             string
	SubscriptionID   string
	SubscriptionName string
	ProviderID       string
}

// Qualified returns the subscription-prefixed display name.
func (g Group) Qualified() string {
	return g.SubscriptionName + "." + g.Name
}

// AzureClient is the subset of the az client the collector needs.
type AzureClient interface {
	CheckInstalled(ctx context.Context) error
	CheckSession(ctx context.Context) error
	ListSubscriptions(ctx context.Context) ([]azcli.Subscription, error)
	ListResourceGroups(ctx context.Context, subscriptionID string) ([]azcli.ResourceGroup, error)
}

// Collector enumerates subscriptions and their resource groups.
type Collector struct {
	cli AzureClient
}

// NewCollector creates a Collector, defaulting to the real az client.
func NewCollector(cli AzureClient) *Collector {
	if cli == nil {
		cli = azcli.NewClient(nil)
	}
	return &Collector{cli: cli}
}

// Collect verifies the az preconditions and returns the flat group list in
// subscription-list order. A per-subscription listing failure is logged and
// skipped; the run continues with whatever was collected. A failed or empty
// subscription listing is logged as a warning and fails the whole run with
// ErrNoSubscriptions.
func (c *Collector) Collect(ctx context.Context) ([]Group, error) {
	output.Step("checking Azure CLI")
	if err := c.cli.CheckInstalled(ctx); err != nil {
		output.Debug("az version check failed", "error", err)
		return nil, &output.CLIError{
			Message: "Azure CLI is not installed or not accessible",
			Cause:   ErrNotInstalled,
			Fix:     "Install the Azure CLI: https://learn.microsoft.com/cli/azure/install-azure-cli",
		}
	}
	if err := c.cli.CheckSession(ctx); err != nil {
		output.Debug("az session check failed", "error", err)
		return nil, &output.CLIError{
			Message: "Not authenticated to Azure",
			Cause:   ErrNotAuthenticated,
			Fix:     "Run: az login",
		}
	}

	output.Step("listing subscriptions")
	subs, err := c.cli.ListSubscriptions(ctx)
	if err != nil {
		output.Warn("could not list subscriptions", "error", err)
		return nil, ErrNoSubscriptions
	}
	if len(subs) == 0 {
		output.Warn("no subscriptions found")
		return nil, ErrNoSubscriptions
	}
	output.Info(fmt.Sprintf("found %d subscription(s)", len(subs)))

	groups := make([]Group, 0)
	for _, sub := range subs {
		output.Info("listing resource groups", "subscription", sub.Name)
		rgs, err := c.cli.ListResourceGroups(ctx, sub.ID)
		if err != nil {
			output.Warn("listing resource groups failed, skipping subscription",
				"subscription", sub.Name, "error", err)
			continue
		}
		for _, rg := range rgs {
			groups = append(groups, Group{
				Name:             rg.Name,
				SubscriptionID:   sub.ID,
				SubscriptionName: sub.Name,
				ProviderID:       rg.ID,
			})
		}
	}
	return groups, nil
}
