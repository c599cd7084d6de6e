// Package term owns the terminal device while frames are drawn.
//
// A [Screen] is entered before each frame and exited after it, so the
// terminal spends the time between frames in the state the user left it in.
// Two backends are provided:
//
//   - [ANSI]: direct escape sequences, raw mode through golang.org/x/term,
//     glyph colors pre-rendered with lipgloss
//   - [Tcell]: a tcell screen kept suspended between frames
//
// All terminal failures are reported as [*OpError] and classified by kind:
// [ErrTerminalInit], [ErrRender] or [ErrResize].
package term
