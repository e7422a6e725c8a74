package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/wippyai/typeflow/csvinput"
	"github.com/wippyai/typeflow/typeinfo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// styled reports whether w is a terminal that gets colored output.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// headers names each declared field after its input column and type.
func headers(p *csvinput.Projection) []string {
	return lo.Map(p.DeclaredTypes(), func(t typeinfo.Tag, k int) string {
		return fmt.Sprintf("%d:%s", p.Column(k), t)
	})
}

func cells(rec []any) []string {
	return lo.Map(rec, func(v any, _ int) string {
		if r, ok := v.(rune); ok {
			return string(r)
		}
		return fmt.Sprint(v)
	})
}

// recordPrinter writes records as tab separated rows, colored on a terminal.
type recordPrinter struct {
	w      io.Writer
	styled bool
}

func (p *recordPrinter) header(cols []string) {
	line := strings.Join(cols, "\t")
	if p.styled {
		line = headerStyle.Render(line)
	}
	fmt.Fprintln(p.w, line)
}

func (p *recordPrinter) record(rec []any) {
	line := strings.Join(cells(rec), "\t")
	if p.styled {
		line = valueStyle.Render(line)
	}
	fmt.Fprintln(p.w, line)
}

func summary(w io.Writer, st csvinput.Stats) {
	fmt.Fprintf(w, "%s records from %s lines (%s), %s dropped\n",
		humanize.Comma(st.Records),
		humanize.Comma(st.Lines),
		humanize.Bytes(uint64(st.Bytes)),
		humanize.Comma(st.Dropped))
}
