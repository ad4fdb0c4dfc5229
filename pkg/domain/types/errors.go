package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// ErrRejectedInput is returned when a diff or an identifier is refused by the validator. Never retried.
	ErrRejectedInput = goerr.New("invalid input")

	// ErrUnknownRepository is returned when an event references a repository that is not registered.
	ErrUnknownRepository = goerr.New("unknown repository")

	ErrDetectorFailure = goerr.New("detector failure")
)
