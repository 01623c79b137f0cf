// Package format renders solver results for human consumption. The
// core returns plain strings; numbering, truncation, and styling all
// live here.
package format

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Formatter writes solution lists to a writer, truncating to Limit.
type Formatter struct {
	// Limit is the maximum number of solutions to show; <= 0 shows all.
	Limit int
	// Plain switches off the table and colors for pipeline-friendly output.
	Plain bool

	useColor bool
	writer   io.Writer
}

// NewFormatter creates a formatter with color support detection.
func NewFormatter(w io.Writer) *Formatter {
	if w == nil {
		w = os.Stdout
	}

	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isTerminal(f.Fd())
	}

	return &Formatter{
		Limit:    10,
		useColor: useColor,
		writer:   w,
	}
}

// PrintSolutions writes the result of a solve for the given digit
// string. An empty list is reported as a normal outcome.
func (f *Formatter) PrintSolutions(digits string, solutions []string) {
	if len(solutions) == 0 {
		fmt.Fprintln(f.writer, f.colorize("No solutions under the current rules.", color.FgYellow))
		return
	}

	fmt.Fprintf(f.writer, "Found %s for %s:\n",
		f.colorize(countNoun(len(solutions), "solution"), color.FgGreen), digits)

	shown := solutions
	if f.Limit > 0 && len(shown) > f.Limit {
		shown = shown[:f.Limit]
	}

	if f.Plain {
		for i, s := range shown {
			fmt.Fprintf(f.writer, "%3d. %s\n", i+1, s)
		}
	} else {
		fmt.Fprint(f.writer, f.solutionTable(shown))
	}

	if hidden := len(solutions) - len(shown); hidden > 0 {
		fmt.Fprintf(f.writer, "(%d more not shown; raise the limit to see them)\n", hidden)
	}
}

// PrintCheck reports whether a re-evaluated equation holds.
func (f *Formatter) PrintCheck(equation string, holds bool) {
	if holds {
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize("✓", color.FgGreen), equation)
		return
	}
	fmt.Fprintf(f.writer, "%s %s does not hold\n", f.colorize("✗", color.FgRed), equation)
}

// solutionTable formats solutions as a numbered markdown table.
func (f *Formatter) solutionTable(solutions []string) string {
	tableString := &strings.Builder{}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment([]tw.Align{tw.AlignRight, tw.AlignNone}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"#", "Equation"})

	for i, s := range solutions {
		table.Append([]string{strconv.Itoa(i + 1), s})
	}
	table.Render()

	return tableString.String()
}

func (f *Formatter) colorize(text string, attrs ...color.Attribute) string {
	if !f.useColor {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// isTerminal checks if the file descriptor is a terminal.
// This is a simplified version - in production you'd use a proper terminal detection library.
func isTerminal(fd uintptr) bool {
	return fd == uintptr(1) || fd == uintptr(2) // stdout or stderr
}
