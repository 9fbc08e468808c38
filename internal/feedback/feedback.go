// Package feedback emits short fire-and-forget pulses on key presses.
package feedback

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/term"
)

// Kinds of pulse backends.
const (
	KindNone = "none"
	KindBell = "bell"
	KindTone = "tone"
)

// Pulser triggers a short feedback pulse. Pulse never blocks or fails.
type Pulser interface {
	Pulse()
}

// Nop ignores pulses.
type Nop struct{}

// Pulse implements Pulser.
func (Nop) Pulse() {}

// Bell writes the terminal bell character.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Pulse implements Pulser.
func (b *Bell) Pulse() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		// Best-effort bell.
		_ = err
	}
}

const (
	toneRate      = beep.SampleRate(44100)
	toneFrequency = 880
	toneDuration  = 60 * time.Millisecond
)

var speakerOnce struct {
	sync.Once
	err error
}

// Tone plays a short sine tone through the default audio device.
type Tone struct {
	samples int
}

// NewTone initializes the speaker. It fails when no audio device is available.
func NewTone() (*Tone, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(toneRate, toneRate.N(time.Second/10))
	})
	if speakerOnce.err != nil {
		return nil, speakerOnce.err
	}
	return &Tone{samples: toneRate.N(toneDuration)}, nil
}

// Pulse implements Pulser.
func (t *Tone) Pulse() {
	sine, err := generators.SineTone(toneRate, toneFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(t.samples, sine))
}

// New resolves a pulser by kind. Any backend that cannot be set up degrades to
// Nop; the returned error is informational only.
func New(kind string) (Pulser, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindTone:
		tone, err := NewTone()
		if err != nil {
			return Nop{}, err
		}
		return tone, nil
	case KindBell, "":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return Nop{}, nil
		}
		return NewBell(os.Stdout), nil
	default:
		return Nop{}, nil
	}
}

// Toggle wraps a pulser so it can be switched on and off at runtime.
type Toggle struct {
	mu      sync.RWMutex
	p       Pulser
	enabled bool
}

// NewToggle returns a Toggle around p.
func NewToggle(p Pulser, enabled bool) *Toggle {
	if p == nil {
		p = Nop{}
	}
	return &Toggle{p: p, enabled: enabled}
}

// SetEnabled switches pulses on or off.
func (t *Toggle) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

// Pulse implements Pulser.
func (t *Toggle) Pulse() {
	t.mu.RLock()
	p, enabled := t.p, t.enabled
	t.mu.RUnlock()
	if enabled {
		p.Pulse()
	}
}
