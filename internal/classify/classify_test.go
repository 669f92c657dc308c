package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/rgsweep/internal/inventory"
)

func groupList(names ...string) []inventory.Group {
	out := make([]inventory.Group, 0, len(names))
	for _, n := range names {
		out = append(out, inventory.Group{Name: n, SubscriptionID: "sub1", SubscriptionName: "A"})
	}
	return out
}

func TestSplitPartitionIsDisjointAndCovers(t *testing.T) {
	groups := groupList("rg-prod", "rg-test", "rg-dev", "rg-staging")

	p := Split(groups, []string{"rg-prod", "staging"})

	assert.Equal(t, len(groups), len(p.ToDelete)+len(p.ToKeep))

	seen := map[string]int{}
	for _, g := range p.ToDelete {
		seen[g.Name]++
	}
	for _, g := range p.ToKeep {
		seen[g.Name]++
	}
	for _, g := range groups {
		assert.Equal(t, 1, seen[g.Name], "group %s must land in exactly one set", g.Name)
	}
}

func TestSplitExactMatchIsCaseInsensitive(t *testing.T) {
	p := Split(groupList("rg-prod"), []string{"RG-Prod"})

	assert.Empty(t, p.ToDelete)
	require.Len(t, p.ToKeep, 1)
	assert.Equal(t, "rg-prod", p.ToKeep[0].Name)
}

func TestSplitRegexMatchIsCaseInsensitiveSubstring(t *testing.T) {
	p := Split(groupList("My-RG-Test-01", "other"), []string{"rg-test"})

	require.Len(t, p.ToKeep, 1)
	assert.Equal(t, "My-RG-Test-01", p.ToKeep[0].Name)
	require.Len(t, p.ToDelete, 1)
	assert.Equal(t, "other", p.ToDelete[0].Name)
}

func TestSplitInvalidRegexIsSkippedNotFatal(t *testing.T) {
	groups := groupList("rg-prod", "rg-test")

	// The broken pattern matches nothing; the valid one still applies.
	p := Split(groups, []string{"rg-[prod", "rg-test"})

	require.Len(t, p.ToKeep, 1)
	assert.Equal(t, "rg-test", p.ToKeep[0].Name)
	require.Len(t, p.ToDelete, 1)
	assert.Equal(t, "rg-prod", p.ToDelete[0].Name)
}

func TestSplitNoPatternsDeletesEverything(t *testing.T) {
	groups := groupList("rg-a", "rg-b")

	p := Split(groups, nil)

	assert.Len(t, p.ToDelete, 2)
	assert.Empty(t, p.ToKeep)
}

func TestSplitPreservesEncounterOrder(t *testing.T) {
	groups := groupList("rg-3", "rg-1", "rg-2")

	p := Split(groups, nil)

	require.Len(t, p.ToDelete, 3)
	assert.Equal(t, "rg-3", p.ToDelete[0].Name)
	assert.Equal(t, "rg-1", p.ToDelete[1].Name)
	assert.Equal(t, "rg-2", p.ToDelete[2].Name)
}

func TestSplitScenarioAcrossSubscriptions(t *testing.T) {
	groups := []inventory.Group{
		{Name: "rg-prod", SubscriptionName: "A", SubscriptionID: "a"},
		{Name: "rg-test", SubscriptionName: "A", SubscriptionID: "a"},
		{Name: "rg-dev", SubscriptionName: "B", SubscriptionID: "b"},
	}

	p := Split(groups, []string{"rg-prod"})

	require.Len(t, p.ToKeep, 1)
	assert.Equal(t, "A.rg-prod", p.ToKeep[0].Qualified())
	require.Len(t, p.ToDelete, 2)
	assert.Equal(t, "A.rg-test", p.ToDelete[0].Qualified())
	assert.Equal(t, "B.rg-dev", p.ToDelete[1].Qualified())
}

func TestSplitPatternOrderDoesNotChangePartition(t *testing.T) {
	groups := groupList("rg-prod", "rg-test", "rg-dev")

	a := Split(groups, []string{"rg-prod", "dev"})
	b := Split(groups, []string{"dev", "rg-prod"})

	assert.Equal(t, a.ToDelete, b.ToDelete)
	assert.ElementsMatch(t, a.ToKeep, b.ToKeep)
}
