// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown pet or task, ambiguous name).
	UserError = 1

	// AuthError indicates a remote auth/config error.
	AuthError = 2

	// BackendError indicates a remote API/network error.
	BackendError = 3

	// StoreError indicates the local task store or pet database failed.
	StoreError = 4
)
