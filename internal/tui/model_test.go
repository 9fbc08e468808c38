package tui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/gridmem/internal/alphabet"
	"github.com/verte-zerg/gridmem/internal/generator"
	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/settings"
	"github.com/verte-zerg/gridmem/internal/trial"
)

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }

type memBackend struct {
	values map[string]string
}

func (b *memBackend) LoadSettings(context.Context) (map[string]string, error) {
	return b.values, nil
}

func (b *memBackend) SaveSettings(_ context.Context, values map[string]string) error {
	b.values = values
	return nil
}

type countPulser struct{ n int }

func (p *countPulser) Pulse() { p.n++ }

func newTestModel(t *testing.T, s model.Settings) (*Model, *trial.Machine, *settings.Repository, *countPulser) {
	t.Helper()
	catalog := alphabet.Default()
	gen := generator.NewWithSource(catalog, rand.NewSource(7))
	notifier := NewNotifier()
	machine := trial.New(settings.TrialConfig(s), gen,
		trial.WithScheduler(idleScheduler{}),
		trial.WithNotify(notifier.Notify),
	)
	t.Cleanup(machine.Close)
	repo := settings.NewRepository(&memBackend{}, s)
	repo.Observe(func(next model.Settings) {
		machine.Reconfigure(settings.TrialConfig(next))
	})
	pulser := &countPulser{}
	return NewModel(machine, repo, catalog, pulser, notifier), machine, repo, pulser
}

func untimedDigits() model.Settings {
	s := settings.Defaults()
	s.TableSize = 3
	s.NoTimer = true
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestGameFlowThroughInput(t *testing.T) {
	m, machine, _, pulser := newTestModel(t, untimedDigits())

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, model.PhaseMemorize, machine.Snapshot().Phase)
	require.Contains(t, m.View(), "press space when ready")

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, model.PhaseInput, machine.Snapshot().Phase)

	press(m, runes("1"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	snap := machine.Snapshot()
	require.Equal(t, "1", snap.Answers[0])
	require.Equal(t, "2", snap.Answers[1])
	require.Equal(t, 2, snap.Cursor)

	press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyBackspace})
	snap = machine.Snapshot()
	require.Equal(t, "", snap.Answers[1])
	require.Equal(t, 1, snap.Cursor)

	press(m, runes("x"))
	require.Equal(t, "", machine.Snapshot().Answers[1])

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	snap = machine.Snapshot()
	require.Equal(t, model.PhaseFinished, snap.Phase)
	require.Equal(t, trial.Score(snap.Grid, snap.Answers), snap.Score)
	require.Equal(t, 4, pulser.n)

	press(m, runes("v"))
	require.True(t, machine.Snapshot().ShowCorrect)
	require.Contains(t, m.View(), "Show your answers")
}

func TestEmptyMixedPoolShowsMessage(t *testing.T) {
	s := untimedDigits()
	s.Mode = model.ModeMixed
	m, machine, _, _ := newTestModel(t, s)

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, model.PhaseIdle, machine.Snapshot().Phase)
	require.Contains(t, m.View(), "Cannot start")
}

func TestThemeTogglePersists(t *testing.T) {
	m, _, repo, _ := newTestModel(t, untimedDigits())
	press(m, runes("t"))
	require.True(t, repo.Current().DarkTheme)
	press(m, runes("t"))
	require.False(t, repo.Current().DarkTheme)
}

func TestSettingsFormReconfiguresMachine(t *testing.T) {
	m, machine, repo, _ := newTestModel(t, untimedDigits())
	press(m, runes("s"))
	require.NotNil(t, m.form)

	press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Nil(t, m.form)
	require.Equal(t, 4, repo.Current().TableSize)
	require.Equal(t, model.ModeLetters, repo.Current().Mode)
	require.Equal(t, 4, machine.Config().Size)
	require.Equal(t, model.ModeLetters, machine.Config().Mode)
}

func TestSettingsFormRejectsUnknownAlphabet(t *testing.T) {
	m, _, repo, _ := newTestModel(t, untimedDigits())
	press(m, runes("s"))
	for i := 0; i < fieldMixed; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(m, runes("Klingon"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.form)
	require.Contains(t, m.form.err, "Klingon")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.form)
	require.Empty(t, repo.Current().MixedAlphabets)
}

func TestRenderStatus(t *testing.T) {
	cfg := model.TrialConfig{Size: 2, MemorizeTime: 5 * time.Second}
	require.Equal(t, "Press space to start", renderStatus(trial.Snapshot{Config: cfg}))
	require.Equal(t, "Memorize: 3", renderStatus(trial.Snapshot{Config: cfg, Phase: model.PhaseMemorize, Countdown: 3}))
	require.Equal(t, "Time 01.25  Cell 2 of 4", renderStatus(trial.Snapshot{
		Config: cfg, Phase: model.PhaseInput, Elapsed: 1250 * time.Millisecond, Cursor: 1, Total: 4,
	}))
	out := renderStatus(trial.Snapshot{Config: cfg, Phase: model.PhaseFinished, Score: 3, Total: 4})
	require.True(t, strings.HasPrefix(out, "Score 3 of 4"))
	require.Contains(t, out, "Show correct answers")
}

func TestKeyboardRows(t *testing.T) {
	rows := keyboardRows(model.ModeDigits, generator.DigitKeys())
	require.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}, {"0"}}, rows)

	letters := make([]string, generator.MaxLetterKeys)
	for i := range letters {
		letters[i] = string(rune('A' + i))
	}
	rows = keyboardRows(model.ModeLetters, letters)
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Len(t, row, lettersPerRow)
	}
	require.Nil(t, keyboardRows(model.ModeLetters, nil))
}

func TestMatchSymbol(t *testing.T) {
	pool := []string{"A", "Ж", "字"}
	got, ok := matchSymbol(pool, "a")
	require.True(t, ok)
	require.Equal(t, "A", got)
	got, ok = matchSymbol(pool, "ж")
	require.True(t, ok)
	require.Equal(t, "Ж", got)
	_, ok = matchSymbol(pool, "b")
	require.False(t, ok)
}

func TestPadCenterUsesDisplayWidth(t *testing.T) {
	require.Equal(t, " A ", padCenter("A", 3))
	require.Equal(t, "字", padCenter("字", 2))
	require.Equal(t, 4, cellWidth([]string{"A", "ab", "字字"}))
}

func TestNotifierCoalesces(t *testing.T) {
	n := NewNotifier()
	n.Notify()
	n.Notify()
	msg := n.wait()()
	require.IsType(t, changedMsg{}, msg)
	select {
	case <-n.ch:
		t.Fatal("expected a single pending signal")
	default:
	}
}
