package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogSizeIsPinned(t *testing.T) {
	t.Parallel()

	require.Len(t, builtinDefinitions(), BuiltinToolCount)
}

func TestCatalogNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, d := range builtinDefinitions() {
		require.False(t, seen[d.name], "duplicate catalog entry %s", d.name)
		seen[d.name] = true
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	t.Parallel()

	for _, d := range builtinDefinitions() {
		require.NotEmpty(t, d.name)
		require.NotEmpty(t, d.description, "tool %s has no description", d.name)
		require.NotEmpty(t, d.category, "tool %s has no category", d.name)
		require.NotNil(t, d.op, "tool %s is not bound to a client method", d.name)
	}
}

// A tool may be read-only or destructive, never both. Every entry carries an
// annotation record, so the side table is exactly as large as the catalog.
func TestCatalogAnnotationInvariant(t *testing.T) {
	t.Parallel()

	annotations := make(map[string]Annotation)
	for _, d := range builtinDefinitions() {
		require.False(t, d.annotation.ReadOnly && d.annotation.Destructive,
			"tool %s is annotated both read-only and destructive", d.name)
		annotations[d.name] = d.annotation
	}
	require.Len(t, annotations, BuiltinToolCount)
}

func TestCatalogDestructiveToolsAreDeletes(t *testing.T) {
	t.Parallel()

	for _, d := range builtinDefinitions() {
		if !d.annotation.Destructive {
			continue
		}
		require.True(t,
			hasAnyPrefix(d.name, "delete_"),
			"unexpected destructive tool %s", d.name)
	}
}

// The Optional flag is the source of truth, but the descriptions keep the
// legacy text convention: an optional parameter says so, a required one never
// does. This pins the two in agreement.
func TestCatalogOptionalFlagMatchesDescription(t *testing.T) {
	t.Parallel()

	for _, d := range builtinDefinitions() {
		for _, p := range d.params {
			require.NotEmpty(t, p.Description, "tool %s parameter %s has no description", d.name, p.Name)
			require.Equal(t, p.Optional, DescriptionMarksOptional(p.Description),
				"tool %s parameter %s: Optional flag and description disagree", d.name, p.Name)
		}
	}
}

func TestCatalogReadOnlyVerbs(t *testing.T) {
	t.Parallel()

	for _, d := range builtinDefinitions() {
		if hasAnyPrefix(d.name, "list_", "search") {
			require.True(t, d.annotation.ReadOnly, "tool %s should be read-only", d.name)
		}
		if hasAnyPrefix(d.name, "delete_") {
			require.True(t, d.annotation.Destructive, "tool %s should be destructive", d.name)
		}
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
