package main

import (
	"fmt"
	"os"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitValidationError = 2 // Input validation error (flags, arguments)
	ExitParseError      = 3 // Locator parse error
	ExitFileError       = 4 // File system error (rules file, repository)
)

func main() {
	if err := execute(); err != nil {
		// Handle structured errors with appropriate exit codes
		if cliErr, ok := err.(*CLIError); ok {
			fmt.Fprintf(os.Stderr, "giturl: %s\n", cliErr.Message)
			if cliErr.Cause != nil {
				fmt.Fprintf(os.Stderr, "  Cause: %v\n", cliErr.Cause)
			}
			os.Exit(cliErr.ExitCode())
		}

		// Handle other error types
		fmt.Fprintf(os.Stderr, "giturl: %v\n", err)
		os.Exit(ExitGenericError)
	}
}

// execute is the main entry point that sets up and runs the CLI
func execute() error {
	return newRootCommand().Execute()
}
