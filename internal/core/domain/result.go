package domain

import "time"

// Artifact describes one emitted build artifact.
type Artifact struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// CompileResult summarizes one compilation pass. Renderers and the
// watch loop consume it; Err carries the validation failure when the
// pass was rejected.
type CompileResult struct {
	Mode      BuildMode
	Pipeline  Pipeline
	Rules     []CacheRule
	Artifacts []Artifact
	Warnings  []string
	Duration  time.Duration
	Err       error
}
