// Package report renders the deletion preview and the final run summary,
// grouped by subscription.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/kjourdan1/rgsweep/internal/classify"
	"github.com/kjourdan1/rgsweep/internal/deleter"
	"github.com/kjourdan1/rgsweep/internal/inventory"
	"github.com/kjourdan1/rgsweep/internal/output"
)

const bannerWidth = 80

var (
	keepMark = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// Preview lists the groups queued for deletion and, when any exist, the
// groups kept by the exclusion patterns. Subscriptions are sorted
// lexicographically; groups keep their inventory encounter order.
func Preview(w io.Writer, p classify.Partition) {
	header(w, "PREVIEW: RESOURCE GROUPS TO DELETE")

	if len(p.ToDelete) == 0 {
		fmt.Fprintln(w, "No resource groups will be deleted.")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "Total resource groups to delete: %d\n\n", len(p.ToDelete))
	printBySubscription(w, p.ToDelete, "•")

	if len(p.ToKeep) > 0 {
		header(w, "RESOURCE GROUPS TO KEEP (EXCLUDED)")
		printBySubscription(w, p.ToKeep, keepMark)
	}
}

// Summary prints the post-run accounting: kept, deleted, failed, and the
// total identified for deletion. A banner marks dry-run results.
func Summary(w io.Writer, p classify.Partition, o deleter.Outcome) {
	if output.JSONMode {
		output.JSON(summaryPayload(p, o))
		return
	}

	header(w, "RUN SUMMARY")

	if o.DryRun {
		fmt.Fprintln(w, output.StyleWarning.Render("[dry-run] simulation mode - no resource groups were actually deleted"))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Resource groups kept (excluded): %d\n", len(p.ToKeep))
	for _, g := range p.ToKeep {
		fmt.Fprintf(w, "   %s %s\n", keepMark, g.Qualified())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Resource groups deleted successfully: %d\n", len(o.Deleted))
	for _, g := range o.Deleted {
		fmt.Fprintf(w, "   %s %s\n", keepMark, g.Qualified())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Resource groups that failed to delete: %d\n", len(o.Failed))
	for _, f := range o.Failed {
		fmt.Fprintf(w, "   %s %s: %s\n", failMark, f.Group.Qualified(), f.Reason)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Resource groups identified for deletion: %d\n", len(p.ToDelete))
	fmt.Fprintln(w, separator())
}

type summaryEntry struct {
	Name         string `json:"name"`
	Subscription string `json:"subscription"`
	Reason       string `json:"reason,omitempty"`
}

func summaryPayload(p classify.Partition, o deleter.Outcome) map[string]interface{} {
	kept := make([]summaryEntry, 0, len(p.ToKeep))
	for _, g := range p.ToKeep {
		kept = append(kept, summaryEntry{Name: g.Name, Subscription: g.SubscriptionName})
	}
	deleted := make([]summaryEntry, 0, len(o.Deleted))
	for _, g := range o.Deleted {
		deleted = append(deleted, summaryEntry{Name: g.Name, Subscription: g.SubscriptionName})
	}
	failed := make([]summaryEntry, 0, len(o.Failed))
	for _, f := range o.Failed {
		failed = append(failed, summaryEntry{Name: f.Group.Name, Subscription: f.Group.SubscriptionName, Reason: f.Reason})
	}
	return map[string]interface{}{
		"dryRun":     o.DryRun,
		"kept":       kept,
		"deleted":    deleted,
		"failed":     failed,
		"identified": len(p.ToDelete),
	}
}

// printBySubscription renders groups under lexicographically sorted
// subscription headings, preserving encounter order within each.
func printBySubscription(w io.Writer, groups []inventory.Group, mark string) {
	bySub := make(map[string][]inventory.Group)
	names := make([]string, 0)
	for _, g := range groups {
		if _, ok := bySub[g.SubscriptionName]; !ok {
			names = append(names, g.SubscriptionName)
		}
		bySub[g.SubscriptionName] = append(bySub[g.SubscriptionName], g)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "Subscription: %s\n", name)
		for _, g := range bySub[name] {
			fmt.Fprintf(w, "   %s %s\n", mark, g.Qualified())
		}
		fmt.Fprintln(w)
	}
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, separator())
	if output.NoColor() {
		fmt.Fprintln(w, title)
	} else {
		fmt.Fprintln(w, output.StyleTitle.Render(title))
	}
	fmt.Fprintln(w, separator())
	fmt.Fprintln(w)
}

func separator() string {
	return strings.Repeat("=", bannerWidth)
}
