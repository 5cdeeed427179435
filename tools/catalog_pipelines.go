package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

func pipelineIDParam() Param {
	return req("pipeline_id", "integer", "Pipeline ID")
}

func jobIDParam() Param {
	return req("job_id", "integer", "Job ID")
}

func pipelineDefinitions() []definition {
	return []definition{
		{
			name:        "list_pipelines",
			description: "List pipelines of a project",
			category:    "pipeline",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("status", "string", "Filter by status: running, pending, success, failed or canceled. Optional."),
				opt("ref", "string", "Filter by branch or tag. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListPipelines,
		},
		{
			name:        "get_pipeline",
			description: "Get a single pipeline",
			category:    "pipeline",
			annotation:  readOnly,
			params:      []Param{projectIDParam(), pipelineIDParam()},
			op:          types.GitLabClient.GetPipeline,
		},
		{
			name:        "create_pipeline",
			description: "Trigger a new pipeline for a ref",
			category:    "pipeline",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("ref", "string", "Branch or tag to run the pipeline on"),
				opt("variables", "object", "Pipeline variables as a name to value mapping. Optional."),
			},
			op: types.GitLabClient.CreatePipeline,
		},
		{
			name:        "retry_pipeline",
			description: "Retry the failed jobs of a pipeline",
			category:    "pipeline",
			annotation:  mutating,
			params:      []Param{projectIDParam(), pipelineIDParam()},
			op:          types.GitLabClient.RetryPipeline,
		},
		{
			name:        "cancel_pipeline",
			description: "Cancel a running pipeline",
			category:    "pipeline",
			annotation:  mutating,
			params:      []Param{projectIDParam(), pipelineIDParam()},
			op:          types.GitLabClient.CancelPipeline,
		},
		{
			name:        "delete_pipeline",
			description: "Delete a pipeline and its job logs",
			category:    "pipeline",
			annotation:  destructive,
			params:      []Param{projectIDParam(), pipelineIDParam()},
			op:          types.GitLabClient.DeletePipeline,
		},
		{
			name:        "list_pipeline_jobs",
			description: "List jobs of a pipeline",
			category:    "pipeline",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				pipelineIDParam(),
				opt("scope", "string", "Filter by job scope such as failed or success. Optional."),
			},
			op: types.GitLabClient.ListPipelineJobs,
		},
		{
			name:        "get_job",
			description: "Get a single job",
			category:    "job",
			annotation:  readOnly,
			params:      []Param{projectIDParam(), jobIDParam()},
			op:          types.GitLabClient.GetJob,
		},
		{
			name:        "get_job_log",
			description: "Get the log of a job",
			category:    "job",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				jobIDParam(),
				opt("tail", "integer", "Return the last N lines. Optional."),
			},
			op: types.GitLabClient.GetJobLog,
		},
		{
			name:        "retry_job",
			description: "Retry a failed or canceled job",
			category:    "job",
			annotation:  mutating,
			params:      []Param{projectIDParam(), jobIDParam()},
			op:          types.GitLabClient.RetryJob,
		},
		{
			name:        "cancel_job",
			description: "Cancel a running job",
			category:    "job",
			annotation:  mutating,
			params:      []Param{projectIDParam(), jobIDParam()},
			op:          types.GitLabClient.CancelJob,
		},
		{
			name:        "play_job",
			description: "Run a manual job",
			category:    "job",
			annotation:  mutating,
			params:      []Param{projectIDParam(), jobIDParam()},
			op:          types.GitLabClient.PlayJob,
		},
	}
}
