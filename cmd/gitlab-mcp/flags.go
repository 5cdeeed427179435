package main

import "github.com/urfave/cli/v2"

var (
	portFlag = &cli.IntFlag{
		Name:    "port",
		EnvVars: []string{"PORT"},
		Usage:   "Listen port for the HTTP transport",
		Value:   8080,
	}
	serverTypeFlag = &cli.StringFlag{
		Name:    "server-type",
		EnvVars: []string{"SERVER_TYPE"},
		Usage:   "Transport to serve MCP over: stdio or http",
		Value:   "stdio",
	}
	dbDirFlag = &cli.StringFlag{
		Name:    "db-dir",
		EnvVars: []string{"DB_DIR"},
		Usage:   "Directory containing the audit database",
		Value:   "./.state/",
	}
	policyFileFlag = &cli.StringFlag{
		Name:    "policy-file",
		EnvVars: []string{"POLICY_FILE"},
		Usage:   "Rego policy evaluated before every tool invocation",
	}
	readOnlyFlag = &cli.BoolFlag{
		Name:    "read-only",
		EnvVars: []string{"READ_ONLY"},
		Usage:   "Disable all destructive tools",
	}
	dynamicToolsFlag = &cli.BoolFlag{
		Name:    "dynamic-tools",
		EnvVars: []string{"DYNAMIC_TOOLS"},
		Usage:   "Advertise only discover_tools/get_tool_schema/execute_tool instead of the full catalog",
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		EnvVars: []string{"LOG_LEVEL"},
		Usage:   "Log level: trace, debug, info, warn, error",
		Value:   "info",
	}
)
