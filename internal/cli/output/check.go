package output

// CheckFileResult is the JSON shape for one scanned file.
type CheckFileResult struct {
	Path     string   `json:"path"`
	Messages []string `json:"messages,omitempty"`
	Error    string   `json:"error,omitempty"`
	Skipped  bool     `json:"skipped,omitempty"`
}

// CheckSummary aggregates a scan run.
type CheckSummary struct {
	FilesScanned  int            `json:"files_scanned"`
	FilesSkipped  int            `json:"files_skipped"`
	FilesFlagged  int            `json:"files_flagged"`
	Violations    int            `json:"violations"`
	ByRule        map[string]int `json:"by_rule,omitempty"`
	TraversalErrs int            `json:"traversal_errors,omitempty"`
}

// CheckOutput is the JSON document emitted by the check command.
type CheckOutput struct {
	Files   []CheckFileResult `json:"files"`
	Summary CheckSummary      `json:"summary"`
}
