package control

// StatusResult is the response for automation.status.
type StatusResult struct {
	CurrentBlock   string `json:"currentBlock,omitempty"`
	Paused         bool   `json:"paused"`
	BlockCount     int    `json:"blockCount"`
	AudioPlaying   bool   `json:"audioPlaying"`
	AudioFile      string `json:"audioFile,omitempty"`
	LaunchedApps   int    `json:"launchedApps"`
	OpenedWebsites int    `json:"openedWebsites"`
	NextTransition string `json:"nextTransition,omitempty"` // RFC3339
	UptimeSeconds  int64  `json:"uptimeSeconds"`
}

// NextResult is the response for automation.next.
type NextResult struct {
	Known bool   `json:"known"`
	At    string `json:"at,omitempty"`    // RFC3339
	Block string `json:"block,omitempty"` // block active after the transition, if any
}

// EmptyResult is a placeholder for methods that return no data.
type EmptyResult struct{}
