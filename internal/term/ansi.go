package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Escape sequences written outside the frame buffer.
const (
	seqClear      = "\x1b[2J\x1b[H"
	seqCursorHide = "\x1b[?25l"
	seqCursorShow = "\x1b[?25h"
	seqSGR0       = "\x1b[0m"
)

const maxWriteAttempts = 3

// RawModeFunc puts the input device into raw mode and returns the function
// that undoes it.
type RawModeFunc func() (restore func() error, err error)

// ANSI drives the terminal with direct escape sequences.
type ANSI struct {
	out      io.Writer
	rawMode  RawModeFunc
	profile  termenv.Profile
	palette  Palette
	origCols int
	origRows int

	alive []byte
	dead  []byte
	bgSGR string

	frame   bytes.Buffer
	restore func() error
	entered bool
	closed  bool
}

type ANSIOption func(*ANSI)

// WithOutput replaces the output device.
func WithOutput(w io.Writer) ANSIOption {
	return func(a *ANSI) { a.out = w }
}

// WithRawMode replaces the raw mode toggle.
func WithRawMode(fn RawModeFunc) ANSIOption {
	return func(a *ANSI) { a.rawMode = fn }
}

// WithSize skips size detection and uses the given size as the original one.
func WithSize(cols, rows int) ANSIOption {
	return func(a *ANSI) { a.origCols, a.origRows = cols, rows }
}

// WithProfile sets the color profile used for glyphs. Defaults to ANSI256.
func WithProfile(p termenv.Profile) ANSIOption {
	return func(a *ANSI) { a.profile = p }
}

// NewANSI captures the size of out and prepares the glyphs for palette.
// Raw mode is applied to in.
func NewANSI(in, out *os.File, palette Palette, opts ...ANSIOption) (*ANSI, error) {
	a := &ANSI{
		out:     out,
		rawMode: termRawMode(int(in.Fd())),
		profile: termenv.ANSI256,
		palette: palette,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.origCols == 0 || a.origRows == 0 {
		cols, rows, err := term.GetSize(int(out.Fd()))
		if err != nil {
			return nil, opErr(ErrTerminalInit, "size", err)
		}
		a.origCols, a.origRows = cols, rows
	}

	a.prepareGlyphs()
	return a, nil
}

func termRawMode(fd int) RawModeFunc {
	return func() (func() error, error) {
		if !term.IsTerminal(fd) {
			return nil, errors.New("stdin is not a terminal")
		}
		old, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		restore := func() error { return term.Restore(fd, old) }
		if err := keepSignals(fd); err != nil {
			return nil, errors.Join(err, restore())
		}
		return restore, nil
	}
}

func (a *ANSI) prepareGlyphs() {
	r := lipgloss.NewRenderer(a.out, termenv.WithProfile(a.profile))
	r.SetColorProfile(a.profile)

	bg := lipgloss.Color(a.palette.Background)
	alive := r.NewStyle().Foreground(lipgloss.Color(a.palette.Alive)).Background(bg)
	dead := r.NewStyle().Foreground(bg).Background(bg)

	a.alive = []byte(alive.Render(Glyph))
	a.dead = []byte(dead.Render(Glyph))

	if c := a.profile.Color(a.palette.Background); c != nil && c.Sequence(true) != "" {
		a.bgSGR = termenv.CSI + c.Sequence(true) + "m"
	}
}

func (a *ANSI) Size() (int, int) { return a.origCols, a.origRows }

func (a *ANSI) Enter(cols, rows int) error {
	if a.entered {
		return nil
	}
	restore, err := a.rawMode()
	if err != nil {
		return opErr(ErrTerminalInit, "raw mode", err)
	}
	a.restore = restore
	a.entered = true

	if err := a.write(resizeSeq(cols, rows)); err != nil {
		return errors.Join(opErr(ErrResize, "resize", err), a.Exit())
	}
	if err := a.write(seqClear + a.bgSGR + seqCursorHide); err != nil {
		return errors.Join(opErr(ErrTerminalInit, "setup", err), a.Exit())
	}
	return nil
}

func (a *ANSI) SetCell(x, y int, alive bool) {
	a.frame.WriteString("\x1b[")
	a.frame.WriteString(strconv.Itoa(y + 1))
	a.frame.WriteByte(';')
	a.frame.WriteString(strconv.Itoa(x + 1))
	a.frame.WriteByte('H')
	if alive {
		a.frame.Write(a.alive)
	} else {
		a.frame.Write(a.dead)
	}
}

func (a *ANSI) Flush() error {
	defer a.frame.Reset()
	if a.frame.Len() == 0 {
		return nil
	}
	return opErr(ErrRender, "flush", writeAll(a.out, a.frame.Bytes()))
}

func (a *ANSI) Exit() error {
	if !a.entered {
		return nil
	}
	a.entered = false
	a.frame.Reset()

	var errs []error
	if err := a.write(resizeSeq(a.origCols, a.origRows)); err != nil {
		errs = append(errs, opErr(ErrResize, "restore size", err))
	}
	if err := a.write(seqClear + seqCursorShow + seqSGR0); err != nil {
		errs = append(errs, opErr(ErrTerminalInit, "reset", err))
	}
	if a.restore != nil {
		if err := a.restore(); err != nil {
			errs = append(errs, opErr(ErrTerminalInit, "cooked mode", err))
		}
		a.restore = nil
	}
	return errors.Join(errs...)
}

func (a *ANSI) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.Exit()
}

func (a *ANSI) write(s string) error {
	return writeAll(a.out, []byte(s))
}

// resizeSeq is the xterm window operation that sets the text area in characters.
func resizeSeq(cols, rows int) string {
	return fmt.Sprintf("\x1b[8;%d;%dt", rows, cols)
}

// writeAll writes b completely, retrying transient errors a bounded number of times.
func writeAll(w io.Writer, b []byte) error {
	failures := 0
	for len(b) > 0 {
		n, err := w.Write(b)
		b = b[n:]
		if err != nil {
			failures++
			if !isTransient(err) || failures >= maxWriteAttempts {
				return err
			}
			continue
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}
