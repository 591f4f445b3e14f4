package tui

// Messages for the tea program.

// TopicsResolvedMsg carries the classification result for one upload.
// Generation identifies which upload the result was computed for; a stale
// generation is discarded by Update.
type TopicsResolvedMsg struct {
	Generation int
	Topics     map[string]string
	Err        error
}

// ScanCompleteMsg carries the DOIs found in the downloads directory.
type ScanCompleteMsg struct {
	DOIs map[string]bool
	Err  error
}

// ExportCompleteMsg reports where the issue plan was written.
type ExportCompleteMsg struct {
	Path string
	Err  error
}
