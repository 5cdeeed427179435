// Package instructions provides the embedded claude-instructions.md content
// served to MCP clients, containing guidance for agents working with the
// GitLab tool catalog.
package instructions

import (
	_ "embed"
)

//go:embed claude-instructions.md
var instructions string

func Get() string {
	return instructions
}
