package sim

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/san-kum/lifeterm/internal/life"
)

// DefaultInterval is the pause between generations.
const DefaultInterval = time.Second

// Phase is one state of the frame loop. Phases always run in declaration
// order and wrap from Restoring back to Preparing.
type Phase int

const (
	Preparing Phase = iota
	Rendering
	Advancing
	Sleeping
	Restoring
)

func (p Phase) String() string {
	switch p {
	case Preparing:
		return "preparing"
	case Rendering:
		return "rendering"
	case Advancing:
		return "advancing"
	case Sleeping:
		return "sleeping"
	case Restoring:
		return "restoring"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Frame is the terminal side of the loop.
type Frame interface {
	Prepare() error
	Render(g *life.Grid) error
	Reset() error
}

// FrameError reports the phase a frame failed in.
type FrameError struct {
	Frame int
	Phase Phase
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (%s): %v", e.Frame, e.Phase, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Loop renders, advances and sleeps until its context is canceled.
type Loop struct {
	grid      *life.Grid
	frame     Frame
	interval  time.Duration
	observers []Observer
	onPhase   func(Phase)
	maxFrames int
	sleep     Sleeper
	frames    int
}

type LoopOption func(*Loop)

// WithObserver is called after every Advancing phase.
func WithObserver(o Observer) LoopOption {
	return func(l *Loop) { l.observers = append(l.observers, o) }
}

// WithPhaseHook is called on entry to every phase.
func WithPhaseHook(fn func(Phase)) LoopOption {
	return func(l *Loop) { l.onPhase = fn }
}

// WithMaxFrames stops the loop after n frames. 0 runs forever.
func WithMaxFrames(n int) LoopOption {
	return func(l *Loop) { l.maxFrames = n }
}

// WithSleeper replaces the timer-based sleep.
func WithSleeper(s Sleeper) LoopOption {
	return func(l *Loop) { l.sleep = s }
}

func NewLoop(g *life.Grid, frame Frame, interval time.Duration, opts ...LoopOption) (*Loop, error) {
	if g == nil || frame == nil {
		return nil, fmt.Errorf("loop needs a grid and a frame")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", interval)
	}
	l := &Loop{
		grid:     g,
		frame:    frame,
		interval: interval,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.maxFrames < 0 {
		return nil, fmt.Errorf("max frames must not be negative, got %d", l.maxFrames)
	}
	return l, nil
}

// Run cycles Preparing, Rendering, Advancing, Sleeping, Restoring. The
// context is checked once per frame, before Preparing; a canceled context
// ends the loop with a nil error after the terminal is restored.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: stopped after %d frames", l.frames)
			return nil
		default:
		}
		if l.maxFrames > 0 && l.frames >= l.maxFrames {
			log.Printf("loop: reached %d frames", l.frames)
			return nil
		}
		if err := l.step(ctx); err != nil {
			return err
		}
	}
}

// Frames reports completed frames.
func (l *Loop) Frames() int { return l.frames }

// step runs one frame. Once Prepare succeeds, Reset runs on every path out.
func (l *Loop) step(ctx context.Context) (err error) {
	l.enter(Preparing)
	if err := l.frame.Prepare(); err != nil {
		return l.fail(Preparing, err)
	}
	defer func() {
		l.enter(Restoring)
		rerr := l.frame.Reset()
		switch {
		case rerr == nil:
		case err == nil:
			err = l.fail(Restoring, rerr)
		default:
			log.Printf("loop: restore after failed frame %d: %v", l.frames, rerr)
		}
	}()

	l.enter(Rendering)
	if err := l.frame.Render(l.grid); err != nil {
		return l.fail(Rendering, err)
	}

	l.enter(Advancing)
	l.grid.Tick()
	l.frames++
	for _, obs := range l.observers {
		obs.OnGeneration(l.grid.Generation(), l.grid)
	}

	l.enter(Sleeping)
	if err := l.sleep(ctx, l.interval); err != nil && ctx.Err() == nil {
		return l.fail(Sleeping, err)
	}
	return nil
}

func (l *Loop) enter(p Phase) {
	if l.onPhase != nil {
		l.onPhase(p)
	}
}

func (l *Loop) fail(p Phase, err error) error {
	log.Printf("loop: frame %d failed while %s: %v", l.frames, p, err)
	return &FrameError{Frame: l.frames, Phase: p, Err: err}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
