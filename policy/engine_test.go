package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const denyDestructivePolicy = `package policy

deny contains msg if {
	input.destructive
	msg := sprintf("destructive tool %s is not allowed", [input.tool])
}

deny contains msg if {
	input.arguments.project_id == "infra/production"
	msg := "production project is locked"
}
`

func TestNewEngineRejectsInvalidRego(t *testing.T) {
	t.Parallel()

	_, err := NewEngine(context.Background(), "this is not rego")
	require.Error(t, err)
}

func TestEvaluateDenyMessages(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(context.Background(), denyDestructivePolicy)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		input  Input
		denies []string
	}{
		{
			name:   "read-only tool is allowed",
			input:  Input{Tool: "list_projects", ReadOnly: true},
			denies: nil,
		},
		{
			name:  "destructive tool is denied",
			input: Input{Tool: "delete_branch", Destructive: true},
			denies: []string{
				"destructive tool delete_branch is not allowed",
			},
		},
		{
			name: "argument-based rule fires",
			input: Input{
				Tool:      "update_project",
				Arguments: map[string]any{"project_id": "infra/production"},
			},
			denies: []string{"production project is locked"},
		},
		{
			name: "both rules can fire at once",
			input: Input{
				Tool:        "delete_project",
				Destructive: true,
				Arguments:   map[string]any{"project_id": "infra/production"},
			},
			denies: []string{
				"destructive tool delete_project is not allowed",
				"production project is locked",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			denies, err := engine.Evaluate(context.Background(), tc.input)
			require.NoError(t, err)
			require.ElementsMatch(t, tc.denies, denies)
		})
	}
}

func TestEvaluateWithoutDenyRule(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(context.Background(), "package policy\n")
	require.NoError(t, err)

	denies, err := engine.Evaluate(context.Background(), Input{Tool: "delete_project", Destructive: true})
	require.NoError(t, err)
	require.Empty(t, denies)
}
