// Package trial drives the memorize/recall game through its phases.
package trial

import (
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

const (
	// CountdownInterval is the cadence of the memorize countdown.
	CountdownInterval = time.Second
	// ElapsedInterval is the granularity of the input timer.
	ElapsedInterval = 10 * time.Millisecond
)

// ErrTrialInProgress is returned by Start while memorizing or entering input.
var ErrTrialInProgress = errors.New("trial already in progress")

// PoolGenerator builds the keyboard pool and grid for a trial.
type PoolGenerator interface {
	Pool(mode model.Mode, language string, mixed []string) []string
	Grid(size int, pool []string) ([]string, error)
}

// Option configures a Machine.
type Option func(*Machine)

// WithScheduler replaces the default ticker-based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.sched = s }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithNotify registers a callback invoked after every state change.
func WithNotify(fn func()) Option {
	return func(m *Machine) { m.notify = fn }
}

// WithFinishHook registers a callback receiving each submitted trial.
func WithFinishHook(fn func(model.TrialResult)) Option {
	return func(m *Machine) { m.onFinish = fn }
}

// Machine owns all trial state. Every method is safe for concurrent use;
// callbacks run after the internal lock is released.
type Machine struct {
	mu sync.Mutex

	cfg      model.TrialConfig
	gen      PoolGenerator
	sched    Scheduler
	now      func() time.Time
	notify   func()
	onFinish func(model.TrialResult)

	phase       model.Phase
	pool        []string
	grid        []string
	answers     []string
	cursor      int
	countdown   int
	elapsed     time.Duration
	showCorrect bool

	startedAt      time.Time
	inputStartedAt time.Time

	// epoch changes on every phase change; ticks from older epochs are dropped.
	epoch     uint64
	stopTimer func()
}

// New returns an idle machine for cfg.
func New(cfg model.TrialConfig, gen PoolGenerator, opts ...Option) *Machine {
	m := &Machine{
		cfg:   cfg,
		gen:   gen,
		sched: TickerScheduler{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins a new trial from Idle or Finished.
func (m *Machine) Start() error {
	m.mu.Lock()
	if m.phase == model.PhaseMemorize || m.phase == model.PhaseInput {
		m.mu.Unlock()
		return ErrTrialInProgress
	}
	pool := m.gen.Pool(m.cfg.Mode, m.cfg.Language, m.cfg.MixedLanguages)
	grid, err := m.gen.Grid(m.cfg.Size, pool)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.stopTimerLocked()
	m.pool = pool
	m.grid = grid
	m.answers = make([]string, len(grid))
	m.cursor = 0
	m.elapsed = 0
	m.countdown = 0
	m.showCorrect = false
	m.startedAt = m.now()
	m.inputStartedAt = time.Time{}
	m.enterMemorizeLocked()
	m.mu.Unlock()

	m.changed()
	return nil
}

// BeginInput leaves an untimed memorize phase.
func (m *Machine) BeginInput() bool {
	m.mu.Lock()
	if m.phase != model.PhaseMemorize || m.cfg.Timed() {
		m.mu.Unlock()
		return false
	}
	m.enterInputLocked()
	m.mu.Unlock()

	m.changed()
	return true
}

// Submit finishes the input phase and scores the answers as they are.
func (m *Machine) Submit() bool {
	m.mu.Lock()
	if m.phase != model.PhaseInput {
		m.mu.Unlock()
		return false
	}
	m.stopTimerLocked()
	m.phase = model.PhaseFinished
	result := m.resultLocked(m.now())
	onFinish := m.onFinish
	m.mu.Unlock()

	if onFinish != nil {
		onFinish(result)
	}
	m.changed()
	return true
}

// Reconfigure applies cfg. A differing config discards any trial and returns to Idle.
func (m *Machine) Reconfigure(cfg model.TrialConfig) bool {
	m.mu.Lock()
	if m.cfg.Equal(cfg) {
		m.cfg = cfg
		m.mu.Unlock()
		return false
	}
	m.cfg = cfg
	m.stopTimerLocked()
	m.phase = model.PhaseIdle
	m.pool = nil
	m.grid = nil
	m.answers = nil
	m.cursor = 0
	m.countdown = 0
	m.elapsed = 0
	m.showCorrect = false
	m.startedAt = time.Time{}
	m.inputStartedAt = time.Time{}
	m.mu.Unlock()

	m.changed()
	return true
}

// Config returns the active trial config.
func (m *Machine) Config() model.TrialConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// EnterSymbol writes s at the cursor and advances it, stopping at the last cell.
func (m *Machine) EnterSymbol(s string) bool {
	return m.edit(func() bool {
		if s == "" {
			return false
		}
		m.answers[m.cursor] = s
		if m.cursor < len(m.answers)-1 {
			m.cursor++
		}
		return true
	})
}

// Backspace clears the cursor cell, or steps back and clears the previous one.
func (m *Machine) Backspace() bool {
	return m.edit(func() bool {
		if m.answers[m.cursor] != "" {
			m.answers[m.cursor] = ""
			return true
		}
		if m.cursor == 0 {
			return false
		}
		m.cursor--
		m.answers[m.cursor] = ""
		return true
	})
}

// MoveBack moves the cursor one cell back.
func (m *Machine) MoveBack() bool {
	return m.edit(func() bool {
		if m.cursor == 0 {
			return false
		}
		m.cursor--
		return true
	})
}

// MoveForward moves the cursor one cell forward.
func (m *Machine) MoveForward() bool {
	return m.edit(func() bool {
		if m.cursor >= len(m.answers)-1 {
			return false
		}
		m.cursor++
		return true
	})
}

func (m *Machine) edit(fn func() bool) bool {
	m.mu.Lock()
	if m.phase != model.PhaseInput || len(m.answers) == 0 {
		m.mu.Unlock()
		return false
	}
	ok := fn()
	m.mu.Unlock()

	if ok {
		m.changed()
	}
	return ok
}

// ToggleShowCorrect switches the finished view between answers and the grid.
func (m *Machine) ToggleShowCorrect() bool {
	m.mu.Lock()
	if m.phase != model.PhaseFinished {
		m.mu.Unlock()
		return false
	}
	m.showCorrect = !m.showCorrect
	m.mu.Unlock()

	m.changed()
	return true
}

// Close stops any running timer.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		Config:      m.cfg,
		Phase:       m.phase,
		Pool:        slices.Clone(m.pool),
		Grid:        slices.Clone(m.grid),
		Answers:     slices.Clone(m.answers),
		Cursor:      m.cursor,
		Countdown:   m.countdown,
		Elapsed:     m.elapsed,
		ShowCorrect: m.showCorrect,
		Total:       len(m.grid),
	}
	if m.phase == model.PhaseFinished {
		snap.Score = Score(m.grid, m.answers)
	}
	return snap
}

func (m *Machine) enterMemorizeLocked() {
	m.phase = model.PhaseMemorize
	m.epoch++
	if !m.cfg.Timed() {
		return
	}
	m.countdown = int(m.cfg.MemorizeTime / time.Second)
	if m.countdown <= 0 {
		m.countdown = 0
		m.enterInputLocked()
		return
	}
	epoch := m.epoch
	m.stopTimer = m.sched.Every(CountdownInterval, func() { m.countdownTick(epoch) })
}

func (m *Machine) enterInputLocked() {
	m.stopTimerLocked()
	m.phase = model.PhaseInput
	m.elapsed = 0
	m.inputStartedAt = m.now()
	epoch := m.epoch
	m.stopTimer = m.sched.Every(ElapsedInterval, func() { m.elapsedTick(epoch) })
}

func (m *Machine) countdownTick(epoch uint64) {
	m.mu.Lock()
	if m.epoch != epoch || m.phase != model.PhaseMemorize {
		m.mu.Unlock()
		return
	}
	m.countdown--
	if m.countdown <= 0 {
		m.countdown = 0
		m.enterInputLocked()
	}
	m.mu.Unlock()

	m.changed()
}

func (m *Machine) elapsedTick(epoch uint64) {
	m.mu.Lock()
	if m.epoch != epoch || m.phase != model.PhaseInput {
		m.mu.Unlock()
		return
	}
	m.elapsed += ElapsedInterval
	m.mu.Unlock()

	m.changed()
}

// stopTimerLocked cancels the live subscription and invalidates its epoch.
func (m *Machine) stopTimerLocked() {
	if m.stopTimer != nil {
		m.stopTimer()
		m.stopTimer = nil
	}
	m.epoch++
}

func (m *Machine) changed() {
	if m.notify != nil {
		m.notify()
	}
}

func (m *Machine) resultLocked(endedAt time.Time) model.TrialResult {
	perSymbol := map[string]*model.SymbolStats{}
	correct := 0
	for i, expected := range m.grid {
		entry, ok := perSymbol[expected]
		if !ok {
			entry = &model.SymbolStats{Symbol: expected}
			perSymbol[expected] = entry
		}
		if m.answers[i] == expected {
			entry.Correct++
			correct++
		} else {
			entry.Incorrect++
		}
	}
	symbols := make([]model.SymbolStats, 0, len(perSymbol))
	for _, entry := range perSymbol {
		symbols = append(symbols, *entry)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Symbol < symbols[j].Symbol
	})

	var memorizeMs int64
	if !m.inputStartedAt.IsZero() {
		memorizeMs = m.inputStartedAt.Sub(m.startedAt).Milliseconds()
	}
	return model.TrialResult{
		StartedAt:      m.startedAt,
		EndedAt:        endedAt,
		Size:           m.cfg.Size,
		Mode:           m.cfg.Mode,
		Language:       m.cfg.Language,
		MixedLanguages: slices.Clone(m.cfg.MixedLanguages),
		MemorizeMs:     memorizeMs,
		InputMs:        m.elapsed.Milliseconds(),
		Correct:        correct,
		Total:          len(m.grid),
		Symbols:        symbols,
	}
}
