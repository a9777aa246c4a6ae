package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/vitrine/internal/flip"
	"github.com/olivier-w/vitrine/internal/portfolio"
)

const scrollFPS = 60

type flipFrameMsg struct {
	runner *flip.Runner
	frame  flip.Frame
}

type flipStoppedMsg struct {
	runner *flip.Runner
}

type scrollTickMsg struct {
	seq int
}

type documentChangedMsg struct{}

type documentLoadedMsg struct {
	doc *portfolio.Portfolio
	err error
}

type clearStatusMsg struct {
	seq int
}

// waitForFrame blocks on the runner's frame channel, one frame per command.
func waitForFrame(r *flip.Runner) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-r.Frames()
		if !ok {
			return flipStoppedMsg{runner: r}
		}
		return flipFrameMsg{runner: r, frame: f}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return documentChangedMsg{}
	}
}

func loadDocumentCmd(load func() (*portfolio.Portfolio, error)) tea.Cmd {
	return func() tea.Msg {
		doc, err := load()
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func scrollTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollTickMsg{seq: seq}
	})
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
