package tui

import tea "github.com/charmbracelet/bubbletea"

type changedMsg struct{}

// Notifier coalesces state-change signals into one pending UI refresh.
type Notifier struct {
	ch chan struct{}
}

// NewNotifier returns a notifier with a single pending slot.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Notify records a change without blocking.
func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return changedMsg{}
	}
}
