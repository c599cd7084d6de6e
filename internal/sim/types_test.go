package sim

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Generations <= 0 {
		t.Error("DefaultConfig has invalid Generations")
	}
	if cfg.CycleWindow <= 0 {
		t.Error("DefaultConfig should enable cycle detection")
	}
}

func TestFrameError(t *testing.T) {
	cause := errors.New("eof")
	err := &FrameError{Frame: 4, Phase: Rendering, Err: cause}
	expected := "frame 4 (rendering): eof"
	if err.Error() != expected {
		t.Errorf("FrameError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Error("FrameError should unwrap to its cause")
	}
}
