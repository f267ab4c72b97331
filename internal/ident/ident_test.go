package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_MixedPunctuation_FoldsToSingleUnderscore(t *testing.T) {
	require.Equal(t, "foo_bar", Normalize("Foo Bar"))
	require.Equal(t, "foo_bar", Normalize("foo-bar"))
	require.Equal(t, "foo_bar", Normalize("  Foo -- Bar!! "))
	require.Equal(t, "list_item_42", Normalize("List item #42"))
}

func TestNormalize_NoAlphanumerics_ReturnsFallback(t *testing.T) {
	require.Equal(t, Fallback, Normalize(""))
	require.Equal(t, Fallback, Normalize("---"))
	require.Equal(t, Fallback, Normalize("  \t  "))
}

func TestNormalize_NonASCII_TreatedAsSeparator(t *testing.T) {
	require.Equal(t, "caf", Normalize("café"))
	require.Equal(t, "a_b", Normalize("a→b"))
}

func TestAllocate_DuplicateLabels_GetNumericSuffixes(t *testing.T) {
	a := NewAllocator()

	require.Equal(t, "simple_case", a.Allocate("simple case"))
	require.Equal(t, "simple_case_1", a.Allocate("simple case"))
	require.Equal(t, "simple_case_2", a.Allocate("Simple Case"))
}

func TestAllocate_SameNormalizedForm_Disambiguated(t *testing.T) {
	a := NewAllocator()

	require.Equal(t, "foo_bar", a.Allocate("Foo Bar"))
	require.Equal(t, "foo_bar_1", a.Allocate("foo-bar"))
}

func TestAllocate_EmptyLabels_FallbackAlsoUniqued(t *testing.T) {
	a := NewAllocator()

	require.Equal(t, "unnamed", a.Allocate(""))
	require.Equal(t, "unnamed_1", a.Allocate("!!!"))
	require.Equal(t, "unnamed_2", a.Allocate(""))
}

func TestAllocate_SuffixCollision_SkipsToFreeSuffix(t *testing.T) {
	a := NewAllocator()

	// An explicit label can occupy the suffix a later duplicate would take.
	require.Equal(t, "case_1", a.Allocate("case 1"))
	require.Equal(t, "case", a.Allocate("case"))
	require.Equal(t, "case_2", a.Allocate("case"))
}

func TestAllocate_ManyLabels_AllPairwiseDistinct(t *testing.T) {
	a := NewAllocator()
	labels := []string{
		"simple case", "simple case", "Simple Case", "simple-case",
		"", "---", "tabs\tand spaces", "tabs and\tspaces",
	}

	seen := make(map[string]struct{})
	for _, l := range labels {
		name := a.Allocate(l)
		_, dup := seen[name]
		require.False(t, dup, "identifier %q returned twice", name)
		seen[name] = struct{}{}
	}
}

func TestAllocate_FreshAllocator_StartsClean(t *testing.T) {
	a := NewAllocator()
	require.Equal(t, "simple_case", a.Allocate("simple case"))

	b := NewAllocator()
	require.Equal(t, "simple_case", b.Allocate("simple case"))
}
