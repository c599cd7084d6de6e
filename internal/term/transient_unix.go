//go:build unix

package term

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isTransient reports write errors worth retrying.
func isTransient(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN)
}
