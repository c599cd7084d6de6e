//go:build !unix

package term

func isTransient(err error) bool { return false }
