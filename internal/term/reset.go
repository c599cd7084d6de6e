package term

import (
	"io"
	"os"
)

// EmergencyReset makes a terminal usable again after a crash mid-frame:
// cooked mode, cursor shown, attributes cleared. Errors are ignored.
func EmergencyReset(w io.Writer) {
	cookedMode()

	io.WriteString(w, seqCursorShow)
	io.WriteString(w, seqSGR0)
	io.WriteString(w, seqClear)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
