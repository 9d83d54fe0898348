package main

// Exit codes
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (runtime failure, import read failure)
	ExitUsageError   = 2 // Malformed invocation (bad arguments or flags)
	ExitStorageError = 3 // Storage layout or database failure
	ExitEditorError  = 4 // Editor launch failure or non-zero exit
)
