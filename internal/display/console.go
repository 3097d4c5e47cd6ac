package display

import (
	"fmt"
	"io"
	"livebets/parse_bovada/internal/entity"
	"strings"
)

// ANSI clear + cursor home. The console is redrawn whole every cycle.
const clearScreen = "\033[2J\033[H"

const timeLayout = "2006-01-02 15:04:05"

type Console struct {
	out io.Writer
}

func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Snapshot redraws the screen with the current live events.
func (c *Console) Snapshot(snapshot entity.Snapshot) {
	var b strings.Builder

	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "Bovada live events from: %s\n", snapshot.URL)
	fmt.Fprintf(&b, "Updated: %s\n", snapshot.UpdatedAt.Format(timeLayout))
	b.WriteString(strings.Repeat("-", 80))
	b.WriteString("\n")

	if len(snapshot.Games) == 0 {
		b.WriteString("No live events found (or endpoint doesn't include live data).\n")
		b.WriteString("If you expected live games, find the correct endpoint via DevTools -> Network.\n")
	} else {
		for _, game := range snapshot.Games {
			fmt.Fprintf(&b, "%s\n", game.Matchup)
			fmt.Fprintf(&b, "  Score: %s\n", game.Score)
			fmt.Fprintf(&b, "  Total: %s\n", game.Total)
			b.WriteString("\n")
		}
	}

	io.WriteString(c.out, b.String())
}

// StatusError is shown when the endpoint answered with a bad HTTP status,
// which usually means the path moved.
func (c *Console) StatusError(url string, err error) {
	var b strings.Builder

	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "HTTP error calling endpoint:\n  %s\n  %s\n", url, err)
	b.WriteString("\nFix: open Bovada in a browser, DevTools -> Network, search for 'services/sports/event'\n")
	b.WriteString("and replace the configured events path with a working one.\n")

	io.WriteString(c.out, b.String())
}

// Error covers every other failure of a poll cycle.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.out, "%sError: %s\n", clearScreen, err)
}
