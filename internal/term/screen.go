package term

import (
	"regexp"
	"strconv"
)

// Glyph is drawn for every cell; dead cells use the background color.
const Glyph = "█"

// Screen is the terminal surface a frame is drawn onto.
type Screen interface {
	// Size returns the terminal size captured at construction.
	Size() (cols, rows int)

	// Enter switches to raw mode, resizes to cols×rows, clears, sets the
	// background and hides the cursor.
	Enter(cols, rows int) error

	// SetCell queues one glyph at column x, row y (0-indexed).
	SetCell(x, y int, alive bool)

	// Flush writes everything queued since the last flush.
	Flush() error

	// Exit restores the captured size, clears, shows the cursor, resets
	// colors and leaves raw mode. It is a no-op outside Enter.
	Exit() error

	// Close releases the terminal. Safe to call multiple times.
	Close() error
}

// Palette holds lipgloss color strings: an ANSI index ("5") or hex ("#ff00ff").
type Palette struct {
	Alive      string `yaml:"alive" json:"alive"`
	Background string `yaml:"background" json:"background"`
}

// DefaultPalette is magenta on black.
func DefaultPalette() Palette {
	return Palette{Alive: "5", Background: "0"}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is an ANSI index in [0, 255] or a #rrggbb value.
func ValidColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
