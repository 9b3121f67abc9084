// Package terminal provides the character-cell I/O the game needs: raw mode, cursor
// visibility, screen clears, single-glyph output and key events.
//
// Three implementations share the Terminal interface:
//   - native: direct ANSI sequences over a raw tty (x/term, x/sys/unix), in-house key parser
//   - tcell: github.com/gdamore/tcell/v2 screen
//   - termbox: github.com/nsf/termbox-go global screen
//
// All restore the terminal on Fini. EmergencyReset is the panic-path fallback.
package terminal
