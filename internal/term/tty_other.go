//go:build !linux

package term

func keepSignals(fd int) error { return nil }

func cookedMode() {}
