package ui

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/vitrine/internal/flip"
	"github.com/olivier-w/vitrine/internal/portfolio"
	"github.com/olivier-w/vitrine/internal/shuffle"
)

const (
	headerLines = 3
	footerLines = 3

	// projectsAnchor resolves to the grid when no section claims it.
	projectsAnchor = "projects"
)

// Options configures a Page.
type Options struct {
	Shuffler      *shuffle.Engine // nil draws from the global generator
	Clock         clock.Clock     // nil is the wall clock
	Logger        *zap.Logger
	ReducedMotion bool   // forces reduced motion regardless of the document
	MarkdownStyle string // glamour standard style; empty follows the terminal

	// Changes signals that the document should be reloaded with Reload.
	Changes <-chan struct{}
	Reload  func() (*portfolio.Portfolio, error)
}

// Page is the Bubbletea model for a portfolio page.
type Page struct {
	opts   Options
	logger *zap.Logger

	doc           *portfolio.Portfolio
	projects      []portfolio.Project // display order
	reducedMotion bool

	runner  *flip.Runner
	frame   flip.Frame
	flipErr error

	viewport  viewport.Model
	scroller  scroller
	scrollSeq int
	help      help.Model
	keys      keyMap
	markdown  *glamour.TermRenderer

	sectionLines []int // first content line of each section
	projectsLine int
	contentLines int

	width     int
	height    int
	ready     bool
	showTop   bool
	status    string
	statusSeq int
	quitting  bool
}

// NewPage loads doc: the project grid is shuffled once and the flip
// headline starts. Call Close when the page is no longer shown.
func NewPage(doc *portfolio.Portfolio, opts Options) Page {
	if opts.Shuffler == nil {
		opts.Shuffler = shuffle.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := Page{
		opts:     opts,
		logger:   opts.Logger,
		viewport: viewport.New(0, 0),
		scroller: newScroller(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.load(doc)
	return m
}

// load treats doc as a fresh page load: the grid is reshuffled and the
// flip headline restarts from its first word.
func (m *Page) load(doc *portfolio.Portfolio) {
	m.stopFlip()
	m.doc = doc
	m.reducedMotion = m.opts.ReducedMotion || doc.ReducedMotion

	order := m.opts.Shuffler.Order(len(doc.Projects))
	m.projects = shuffle.Apply(doc.Projects, order)
	m.logger.Info("page loaded",
		zap.String("title", doc.Title),
		zap.String("source", doc.Source),
		zap.Strings("order", projectIDs(m.projects)),
		zap.Bool("reduced_motion", m.reducedMotion))

	timing := doc.Flip.Timing()
	if m.reducedMotion {
		timing = timing.Instant()
	}
	m.frame = flip.Frame{}
	if len(doc.Flip.Words) > 0 {
		m.frame.Word = doc.Flip.Words[0]
	}
	m.runner, m.flipErr = flip.Start(m.opts.Clock, doc.Flip.Words, timing, flip.WithLogger(m.logger.Named("flip")))
	if m.flipErr != nil {
		m.logger.Warn("flip headline disabled", zap.Error(m.flipErr))
	}

	m.scroller.stop()
	m.showTop = false
	if m.ready {
		m.renderContent()
		m.viewport.SetYOffset(0)
	}
}

// Close stops the flip headline of this copy of the page. It leaves the
// runner field set on the receiver's copy; Stop is idempotent, so calling
// Close again, or on another copy sharing the runner, is harmless.
func (m Page) Close() {
	m.stopFlip()
}

func (m *Page) stopFlip() {
	if m.runner != nil {
		m.runner.Stop()
		m.runner = nil
	}
}

// Projects returns the projects in display order.
func (m Page) Projects() []portfolio.Project {
	return m.projects
}

// CurrentWord returns the headline word as last rendered.
func (m Page) CurrentWord() string {
	return m.frame.Word
}

// Offset returns the scroll position in lines.
func (m Page) Offset() int {
	return m.viewport.YOffset
}

// BackToTopVisible reports whether the back-to-top control is shown.
func (m Page) BackToTopVisible() bool {
	return m.showTop
}

func (m Page) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.doc.Title),
		waitForFrame(m.runner),
		waitForChange(m.opts.Changes),
	)
}

func (m Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Page) handleMsg(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.scroller.stop()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.updateBackToTop()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerLines-footerLines)
		m.help.Width = msg.Width
		r, err := newMarkdownRenderer(m.opts.MarkdownStyle, msg.Width)
		if err != nil {
			m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		}
		m.markdown = r
		m.ready = true
		m.renderContent()
		m.updateBackToTop()
		return m, nil

	case flipFrameMsg:
		if msg.runner != m.runner {
			return m, nil
		}
		m.frame = msg.frame
		return m, waitForFrame(m.runner)

	case flipStoppedMsg:
		return m, nil

	case scrollTickMsg:
		if msg.seq != m.scrollSeq || !m.scroller.active {
			return m, nil
		}
		offset, done := m.scroller.step()
		m.viewport.SetYOffset(offset)
		m.updateBackToTop()
		if done {
			return m, nil
		}
		return m, scrollTickCmd(m.scrollSeq)

	case documentChangedMsg:
		if m.opts.Reload == nil {
			return m, waitForChange(m.opts.Changes)
		}
		return m, tea.Batch(loadDocumentCmd(m.opts.Reload), waitForChange(m.opts.Changes))

	case documentLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("reload failed", zap.Error(msg.err))
			return m, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.err))
		}
		m.load(msg.doc)
		return m, tea.Batch(
			waitForFrame(m.runner),
			tea.SetWindowTitle(m.doc.Title),
			m.setStatus("Reloaded"),
		)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Page) handleKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stopFlip()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Top):
		return m, m.scrollTo(0)
	case key.Matches(msg, m.keys.Projects):
		return m, m.JumpTo(projectsAnchor)
	case key.Matches(msg, m.keys.Section):
		i, _ := sectionNumber(msg)
		if i >= len(m.doc.Sections) {
			return m, nil
		}
		return m, m.JumpTo(m.doc.Sections[i].Anchor)
	}

	m.scroller.stop()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.updateBackToTop()
	return m, cmd
}

// JumpTo scrolls to the section named by anchor ("#about" or "about").
// Anchors that do not resolve are ignored.
func (m *Page) JumpTo(anchor string) tea.Cmd {
	if i, ok := m.doc.SectionIndex(anchor); ok && i < len(m.sectionLines) {
		return m.scrollTo(m.sectionLines[i])
	}
	if strings.TrimPrefix(strings.TrimSpace(anchor), "#") == projectsAnchor {
		return m.scrollTo(m.projectsLine)
	}
	m.logger.Debug("anchor not found", zap.String("anchor", anchor))
	return nil
}

// scrollTo moves to line, eased by the spring unless motion is reduced.
func (m *Page) scrollTo(line int) tea.Cmd {
	target := min(max(line, 0), m.maxOffset())
	if m.reducedMotion {
		m.scroller.stop()
		m.viewport.SetYOffset(target)
		m.updateBackToTop()
		return nil
	}
	m.scrollSeq++
	m.scroller.start(m.viewport.YOffset, target)
	if !m.scroller.active {
		return nil
	}
	return scrollTickCmd(m.scrollSeq)
}

func (m Page) maxOffset() int {
	return max(0, m.contentLines-m.viewport.Height)
}

func (m *Page) updateBackToTop() {
	m.showTop = backToTopVisible(m.viewport.YOffset, m.width)
}

func (m *Page) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	return clearStatusCmd(m.statusSeq)
}

// renderContent lays out sections and the grid, recording where each
// anchor lands so jumps can target it.
func (m *Page) renderContent() {
	var b strings.Builder
	line := 0
	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		line += lipgloss.Height(s)
	}

	m.sectionLines = make([]int, 0, len(m.doc.Sections))
	for i, s := range m.doc.Sections {
		m.sectionLines = append(m.sectionLines, line)
		write("  " + sectionTitleStyle.Render(fmt.Sprintf("%d  %s", i+1, s.Title)))
		if body := renderMarkdown(m.markdown, s.Body); body != "" {
			write(body)
		}
		write("")
	}

	m.projectsLine = line
	write("  " + sectionTitleStyle.Render("Projects"))
	write(lipgloss.NewStyle().PaddingLeft(2).Render(renderGrid(m.projects, m.width-4)))

	m.contentLines = line
	m.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

func (m Page) View() string {
	if m.quitting {
		return ""
	}

	header := "\n  " + titleStyle.Render(m.doc.Title)
	if word := m.renderFlip(); word != "" {
		header += "  " + word
	}
	header += "\n  " + taglineStyle.Render(m.doc.Tagline) + "\n"
	if !m.ready {
		return header
	}

	statusLine := ""
	switch {
	case m.status != "":
		statusLine = "  " + statusStyle.Render(m.status)
	case m.flipErr != nil:
		statusLine = "  " + statusStyle.Render("headline: "+m.flipErr.Error())
	}

	topLine := ""
	if m.showTop {
		button := backToTopStyle.Render("↑ top")
		gap := m.width - lipgloss.Width(button) - 2
		topLine = spaces(gap) + button
	}

	helpLine := "  " + helpStyle.Render(m.help.View(m.keys))

	return header + m.viewport.View() + "\n" + statusLine + "\n" + topLine + "\n" + helpLine
}

func (m Page) renderFlip() string {
	if m.frame.Word == "" {
		return ""
	}
	style := flipStyle
	if !m.reducedMotion {
		switch m.frame.Phase {
		case flip.TransitioningOut:
			style = flipOutStyle
		case flip.TransitioningIn:
			style = flipInStyle
		}
	}
	return style.Render(m.frame.Word)
}

func projectIDs(projects []portfolio.Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
