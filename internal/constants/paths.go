package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.taskdeck/logs/taskdeck.log
	CLILogFileName = "taskdeck.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global taskdeck configuration file.
	// This file is located in the taskdeck home directory.
	GlobalConfigName = "config.yaml"
)
