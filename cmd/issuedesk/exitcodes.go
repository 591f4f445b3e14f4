package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing credential, bad config file)
	ExitDataError   = 3 // Data error (empty manifest, missing required columns)
)
