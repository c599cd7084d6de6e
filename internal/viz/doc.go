// Package viz draws generations onto a terminal screen.
//
// A [View] brackets every frame: [View.Prepare] takes the terminal into the
// drawing state, [View.Render] queues one glyph per cell and flushes once,
// and [View.Reset] gives the terminal back.
package viz
