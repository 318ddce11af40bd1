package console

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#646464"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

// commandParse splits a console line into the command, its first argument
// and the unsplit remainder.
func commandParse[T ~string](input T) (T, T, T) {
	r := make([]string, 3)
	copy(r, strings.SplitN(string(input), " ", 3))
	return T(r[0]), T(r[1]), T(r[2])
}

// highlightWord styles every case-insensitive occurrence of pattern. Matches
// are located in line itself, since lowercasing can change byte lengths.
func highlightWord(pattern, line string) string {
	if pattern == "" {
		return line
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	return re.ReplaceAllStringFunc(line, func(match string) string {
		return matchStyle.Render(match)
	})
}

func setTitle(w io.Writer, t string) {
	fmt.Fprintf(w, "\033]0;%s\007", t)
}

func printInfo(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, infoStyle.Render("# "+fmt.Sprintf(format, a...)))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("! "+err.Error()))
}

func timeTrack(w io.Writer, start time.Time) {
	elapsed := time.Since(start)
	printInfo(w, "...%s", round(elapsed, 2))
}

var divs = []time.Duration{
	time.Duration(1), time.Duration(10), time.Duration(100), time.Duration(1000),
}

func round(d time.Duration, digits int) time.Duration {
	if digits < 0 || digits >= len(divs) {
		panic("wrong length provided")
	}
	switch {
	case d > time.Second:
		d = d.Round(time.Second / divs[digits])
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / divs[digits])
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / divs[digits])
	}
	return d
}
