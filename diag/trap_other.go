//go:build !unix

package diag

// raiseTrap is a no-op where there is no SIGTRAP; Trap still panics.
func raiseTrap() {}
