package resources

import (
	"context"

	"github.com/goware/urlx"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

var (
	// ErrInvalidURI means the URI does not carry the gitlab:// scheme.
	ErrInvalidURI = errors.New("invalid resource URI")

	// ErrUnknownResource means the URI carries the right scheme but matches
	// nothing in the catalog.
	ErrUnknownResource = errors.New("unknown resource")
)

// readmeCandidates are tried in order by the readme template. The first
// filename the client can serve wins; only when every candidate fails does
// the read fail. This bounded fallback is the only retry-like behavior in
// the resource layer.
var readmeCandidates = []string{"README.md", "README.rst", "README.txt", "README"}

// Handler resolves URIs through the registry and performs reads via the
// capability object.
type Handler struct {
	registry *Registry
	client   types.GitLabClient
	logger   hclog.Logger
}

func NewHandler(registry *Registry, client types.GitLabClient, logger hclog.Logger) *Handler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Handler{
		registry: registry,
		client:   client,
		logger:   logger.Named("resources"),
	}
}

// Read resolves uri and returns the raw or lightly reshaped data behind it.
func (h *Handler) Read(ctx context.Context, uri string) (any, error) {
	parsed, err := urlx.Parse(uri)
	if err != nil || parsed.Scheme != Scheme {
		return nil, errors.Wrap(ErrInvalidURI, uri)
	}

	match := h.registry.MatchURI(uri)
	if match == nil {
		return nil, errors.Wrap(ErrUnknownResource, uri)
	}

	if match.Static {
		return h.readStatic(ctx, match.Resource.URI)
	}
	return h.readTemplate(ctx, match.Template.URITemplate, match.Params)
}

func (h *Handler) readStatic(ctx context.Context, uri string) (any, error) {
	switch uri {
	case "gitlab://projects":
		return h.client.ListProjects(ctx, map[string]any{})
	case "gitlab://user/current":
		return h.client.GetCurrentUser(ctx, map[string]any{})
	case "gitlab://groups":
		return h.client.ListGroups(ctx, map[string]any{})
	}
	return nil, errors.Wrap(ErrUnknownResource, uri)
}

// readTemplate dispatches on the template string, not the raw URI.
func (h *Handler) readTemplate(ctx context.Context, uriTemplate string, params map[string]string) (any, error) {
	projectID := params["project_id"]

	switch uriTemplate {
	case "gitlab://project/{project_id}":
		return h.client.GetProject(ctx, map[string]any{"project_id": projectID})

	case "gitlab://project/{project_id}/readme":
		return h.readReadme(ctx, projectID)

	case "gitlab://project/{project_id}/issues/open":
		return h.client.ListIssues(ctx, map[string]any{
			"project_id": projectID,
			"state":      "opened",
		})

	case "gitlab://project/{project_id}/issues/{iid}":
		return h.client.GetIssue(ctx, map[string]any{
			"project_id": projectID,
			"issue_iid":  params["iid"],
		})

	case "gitlab://project/{project_id}/mrs/open":
		return h.client.ListMergeRequests(ctx, map[string]any{
			"project_id": projectID,
			"state":      "opened",
		})

	case "gitlab://project/{project_id}/mrs/{iid}":
		return h.client.GetMergeRequest(ctx, map[string]any{
			"project_id": projectID,
			"mr_iid":     params["iid"],
		})

	case "gitlab://project/{project_id}/pipelines/recent":
		return h.client.ListPipelines(ctx, map[string]any{
			"project_id": projectID,
			"per_page":   20,
		})

	case "gitlab://project/{project_id}/pipelines/{pipeline_id}":
		return h.client.GetPipeline(ctx, map[string]any{
			"project_id":  projectID,
			"pipeline_id": params["pipeline_id"],
		})

	case "gitlab://project/{project_id}/branches":
		return h.client.ListBranches(ctx, map[string]any{"project_id": projectID})

	case "gitlab://project/{project_id}/file/{file_path}":
		return h.client.GetRawFile(ctx, map[string]any{
			"project_id": projectID,
			"file_path":  params["file_path"],
		})
	}

	return nil, errors.Wrap(ErrUnknownResource, uriTemplate)
}

func (h *Handler) readReadme(ctx context.Context, projectID string) (any, error) {
	var lastErr error
	for _, name := range readmeCandidates {
		content, err := h.client.GetRawFile(ctx, map[string]any{
			"project_id": projectID,
			"file_path":  name,
		})
		if err == nil {
			return content, nil
		}
		lastErr = err
	}
	h.logger.Debug("no readme candidate found", "project_id", projectID, "error", lastErr)
	return nil, errors.Wrapf(ErrUnknownResource, "no README found in project %s", projectID)
}
