package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/typeflow/csvinput"
)

var browseLimit int

var browseCmd = &cobra.Command{
	Use:   "browse FILE",
	Short: "Browse parsed records interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().IntVar(&browseLimit, "limit", 10000, "maximum number of records to load")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	f, err := loadFormat(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newBrowseModel(args[0], f, browseLimit), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type browseState int

const (
	stateList browseState = iota
	stateFilter
	stateDetail
)

type browseModel struct {
	err      error
	format   *csvinput.Format
	filename string
	headers  []string
	records  [][]string
	visible  []int // indexes into records matching the filter
	filter   textinput.Model
	stats    csvinput.Stats
	limit    int
	selected int
	height   int
	loaded   bool
	state    browseState
}

type recordsLoadedMsg struct {
	err     error
	records [][]string
	stats   csvinput.Stats
}

func newBrowseModel(filename string, f *csvinput.Format, limit int) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "substring"
	ti.Prompt = "filter: "
	ti.Width = 40
	return &browseModel{
		filename: filename,
		format:   f,
		headers:  headers(f.Projection()),
		filter:   ti,
		limit:    limit,
		height:   20,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *browseModel) loadRecords() tea.Msg {
	in, err := os.Open(m.filename)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	defer in.Close()

	r, err := m.format.NewReader(in)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	defer r.Close()

	var records [][]string
	for len(records) < m.limit {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return recordsLoadedMsg{err: err, records: records, stats: r.Stats()}
		}
		records = append(records, cells(rec))
	}
	return recordsLoadedMsg{records: records, stats: r.Stats()}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 1)

	case recordsLoadedMsg:
		m.loaded = true
		m.err = msg.err
		m.records = msg.records
		m.stats = msg.stats
		m.applyFilter()

	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateList
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "enter":
			switch m.state {
			case stateList:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateList
			}

		case "esc":
			m.state = stateList
		}
	}
	return m, nil
}

func (m *browseModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, rec := range m.records {
		if needle == "" || strings.Contains(strings.ToLower(strings.Join(rec, "\t")), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *browseModel) View() string {
	if !m.loaded {
		return "Loading records..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("typeflow"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(fmt.Sprintf("  %s of %s records",
		humanize.Comma(int64(len(m.visible))), humanize.Comma(int64(len(m.records)))))
	if m.stats.Dropped > 0 {
		b.WriteString(fmt.Sprintf(", %s dropped", humanize.Comma(m.stats.Dropped)))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateList, stateFilter:
		b.WriteString(headerStyle.Render("  " + strings.Join(m.headers, "\t")))
		b.WriteString("\n")
		start := 0
		if m.selected >= m.height {
			start = m.selected - m.height + 1
		}
		end := min(start+m.height, len(m.visible))
		for i := start; i < end; i++ {
			line := strings.Join(m.records[m.visible[i]], "\t")
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(m.filter.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter apply • esc done"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter details • q quit"))
		}

	case stateDetail:
		rec := m.records[m.visible[m.selected]]
		for k, v := range rec {
			b.WriteString(headerStyle.Render(m.headers[k]))
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(v))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}
