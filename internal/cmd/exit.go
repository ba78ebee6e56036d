package cmd

// Exit codes. Every fatal error exits 1; the failure category is
// carried by the error's sentinel, not the code.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates any fatal error: connection, auth,
	// not-found, unexpected API status, invalid input, template failure.
	ExitGeneralError = 1
)
