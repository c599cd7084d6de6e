//go:build linux

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// keepSignals turns ISIG back on after MakeRaw so ^C still raises SIGINT
// while a frame is on screen.
func keepSignals(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	termios.Lflag |= unix.ISIG
	return unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}

// cookedMode puts the controlling terminal back into line mode. Best effort.
func cookedMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(fd, unix.TCSETS, termios)
	}
}
