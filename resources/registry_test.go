package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchURIStaticResources(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, uri := range []string{"gitlab://projects", "gitlab://user/current", "gitlab://groups"} {
		match := registry.MatchURI(uri)
		require.NotNil(t, match, uri)
		require.True(t, match.Static, uri)
		require.Equal(t, uri, match.Resource.URI)
		require.Empty(t, match.Params)
	}
}

func TestMatchURITemplates(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	testCases := []struct {
		name        string
		uri         string
		uriTemplate string
		params      map[string]string
	}{
		{
			name:        "bare project with numeric id",
			uri:         "gitlab://project/42",
			uriTemplate: "gitlab://project/{project_id}",
			params:      map[string]string{"project_id": "42"},
		},
		{
			name:        "project id may span multiple path segments",
			uri:         "gitlab://project/group/sub/app",
			uriTemplate: "gitlab://project/{project_id}",
			params:      map[string]string{"project_id": "group/sub/app"},
		},
		{
			name:        "readme suffix is not swallowed by the project id",
			uri:         "gitlab://project/group/app/readme",
			uriTemplate: "gitlab://project/{project_id}/readme",
			params:      map[string]string{"project_id": "group/app"},
		},
		{
			name:        "literal open beats the numeric issue template",
			uri:         "gitlab://project/group/app/issues/open",
			uriTemplate: "gitlab://project/{project_id}/issues/open",
			params:      map[string]string{"project_id": "group/app"},
		},
		{
			name:        "numeric iid resolves to the issue template",
			uri:         "gitlab://project/group/app/issues/17",
			uriTemplate: "gitlab://project/{project_id}/issues/{iid}",
			params:      map[string]string{"project_id": "group/app", "iid": "17"},
		},
		{
			name:        "open merge requests",
			uri:         "gitlab://project/42/mrs/open",
			uriTemplate: "gitlab://project/{project_id}/mrs/open",
			params:      map[string]string{"project_id": "42"},
		},
		{
			name:        "single merge request",
			uri:         "gitlab://project/42/mrs/7",
			uriTemplate: "gitlab://project/{project_id}/mrs/{iid}",
			params:      map[string]string{"project_id": "42", "iid": "7"},
		},
		{
			name:        "recent pipelines",
			uri:         "gitlab://project/group/app/pipelines/recent",
			uriTemplate: "gitlab://project/{project_id}/pipelines/recent",
			params:      map[string]string{"project_id": "group/app"},
		},
		{
			name:        "single pipeline",
			uri:         "gitlab://project/group/app/pipelines/991",
			uriTemplate: "gitlab://project/{project_id}/pipelines/{pipeline_id}",
			params:      map[string]string{"project_id": "group/app", "pipeline_id": "991"},
		},
		{
			name:        "branches",
			uri:         "gitlab://project/group/app/branches",
			uriTemplate: "gitlab://project/{project_id}/branches",
			params:      map[string]string{"project_id": "group/app"},
		},
		{
			name:        "file path may span multiple segments",
			uri:         "gitlab://project/group/app/file/docs/guide/intro.md",
			uriTemplate: "gitlab://project/{project_id}/file/{file_path}",
			params:      map[string]string{"project_id": "group/app", "file_path": "docs/guide/intro.md"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			match := registry.MatchURI(tc.uri)
			require.NotNil(t, match)
			require.False(t, match.Static)
			require.Equal(t, tc.uriTemplate, match.Template.URITemplate)
			require.Equal(t, tc.params, match.Params)
		})
	}
}

func TestMatchURINoMatch(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, uri := range []string{
		"gitlab://project/",
		"gitlab://nonsense",
		"gitlab://user/other",
		"http://example.com",
	} {
		require.Nil(t, registry.MatchURI(uri), uri)
	}
}

// The template list is matched top to bottom, so longer (more literal)
// patterns must come first.
func TestTemplatesOrderedMostSpecificFirst(t *testing.T) {
	t.Parallel()

	templates := NewRegistry().Templates()
	require.NotEmpty(t, templates)

	for i := 1; i < len(templates); i++ {
		require.GreaterOrEqual(t,
			len(templates[i-1].source), len(templates[i].source),
			"template %s sorts after the shorter %s",
			templates[i-1].URITemplate, templates[i].URITemplate)
	}

	// The catch-all bare project template must be tried last.
	require.Equal(t, "gitlab://project/{project_id}", templates[len(templates)-1].URITemplate)
}

func TestCatalogCopiesAreDefensive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	static := registry.StaticResources()
	static[0].URI = "gitlab://tampered"
	require.Equal(t, "gitlab://projects", registry.StaticResources()[0].URI)

	templates := registry.Templates()
	templates[0].URITemplate = "tampered"
	require.NotEqual(t, "tampered", registry.Templates()[0].URITemplate)
}
