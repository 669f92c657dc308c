// Package doctor implements prerequisite checks for rgsweep.
//
// It validates that the Azure CLI is installed, that an authenticated
// session exists, and that at least one subscription is visible.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/kjourdan1/rgsweep/internal/azcli"
)

// Status represents the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// CheckResult is the outcome of running a single prerequisite check.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Check defines a single prerequisite check.
type Check struct {
	Name     string
	Category string // "tool", "auth", "azure"
	Critical bool   // if true, failure => exit code 1
	Run      func(ctx context.Context, runner azcli.Runner) CheckResult
}

// Summary holds the aggregated results of all checks.
type Summary struct {
	Results    []CheckResult `json:"results"`
	TotalPass  int           `json:"totalPass"`
	TotalFail  int           `json:"totalFail"`
	TotalWarn  int           `json:"totalWarn"`
	HasFailure bool          `json:"hasFailure"`
}

// RunAll executes all checks and returns a summary.
func RunAll(ctx context.Context, runner azcli.Runner) Summary {
	checks := AllChecks()
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run(ctx, runner))
	}
	return buildSummary(results, checks)
}

func buildSummary(results []CheckResult, checks []Check) Summary {
	s := Summary{Results: results}
	for i, r := range results {
		switch r.Status {
		case StatusPass:
			s.TotalPass++
		case StatusFail:
			s.TotalFail++
			if checks[i].Critical {
				s.HasFailure = true
			}
		case StatusWarn:
			s.TotalWarn++
		}
	}
	return s
}

// AllChecks returns the ordered list of prerequisite checks.
func AllChecks() []Check {
	return []Check{
		checkAzCLI(),
		checkAzSession(),
		checkSubscriptions(),
	}
}

func checkAzCLI() Check {
	return Check{
		Name:     "az-cli",
		Category: "tool",
		Critical: true,
		Run: func(ctx context.Context, runner azcli.Runner) CheckResult {
			res := runner.Run(ctx, "version")
			if !res.OK() {
				return CheckResult{
					Name:    "az-cli",
					Status:  StatusFail,
					Message: "Azure CLI (az) not found or not runnable",
					Fix:     "Install the Azure CLI: https://learn.microsoft.com/cli/azure/install-azure-cli",
				}
			}
			version := extractJSONField(res.Stdout, "azure-cli")
			return CheckResult{
				Name:    "az-cli",
				Status:  StatusPass,
				Message: fmt.Sprintf("az %s found", version),
			}
		},
	}
}

func checkAzSession() Check {
	return Check{
		Name:     "az-session",
		Category: "auth",
		Critical: true,
		Run: func(ctx context.Context, runner azcli.Runner) CheckResult {
			res := runner.Run(ctx, "account", "show", "--output", "json")
			if !res.OK() {
				return CheckResult{
					Name:    "az-session",
					Status:  StatusFail,
					Message: "No active Azure session",
					Fix:     "Run: az login",
				}
			}
			tenantID := extractJSONField(res.Stdout, "tenantId")
			subName := extractJSONField(res.Stdout, "name")
			return CheckResult{
				Name:    "az-session",
				Status:  StatusPass,
				Message: fmt.Sprintf("Logged in — tenant: %s, default subscription: %s", tenantID, subName),
			}
		},
	}
}

func checkSubscriptions() Check {
	return Check{
		Name:     "az-subscriptions",
		Category: "azure",
		Critical: false,
		Run: func(ctx context.Context, runner azcli.Runner) CheckResult {
			res := runner.Run(ctx, "account", "list", "--output", "json")
			if !res.OK() {
				return CheckResult{
					Name:    "az-subscriptions",
					Status:  StatusWarn,
					Message: "Could not list subscriptions",
					Fix:     "Ensure your identity has Reader access to at least one subscription",
				}
			}
			var subs []json.RawMessage
			if err := json.Unmarshal([]byte(res.Stdout), &subs); err != nil || len(subs) == 0 {
				return CheckResult{
					Name:    "az-subscriptions",
					Status:  StatusWarn,
					Message: "No subscriptions visible to this session",
					Fix:     "Run: az account list --refresh, or check your role assignments",
				}
			}
			return CheckResult{
				Name:    "az-subscriptions",
				Status:  StatusPass,
				Message: fmt.Sprintf("%d subscription(s) visible", len(subs)),
			}
		},
	}
}

// extractJSONField does a simple regex extraction for "field": "value".
// This avoids a full decode just to surface a couple of display fields.
func extractJSONField(jsonStr, field string) string {
	re := regexp.MustCompile(fmt.Sprintf(`"%s"\s*:\s*"([^"]*)"`, regexp.QuoteMeta(field)))
	m := re.FindStringSubmatch(jsonStr)
	if len(m) >= 2 {
		return m[1]
	}
	return "unknown"
}
