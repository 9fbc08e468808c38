package feedback

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingPulser struct {
	n int
}

func (c *countingPulser) Pulse() { c.n++ }

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	NewBell(&buf).Pulse()
	require.Equal(t, "\a", buf.String())
}

func TestToggleGatesPulses(t *testing.T) {
	inner := &countingPulser{}
	toggle := NewToggle(inner, false)
	toggle.Pulse()
	require.Zero(t, inner.n)

	toggle.SetEnabled(true)
	toggle.Pulse()
	toggle.Pulse()
	require.Equal(t, 2, inner.n)
}

func TestNewUnknownKindIsNop(t *testing.T) {
	p, err := New("rumble")
	require.NoError(t, err)
	require.IsType(t, Nop{}, p)

	p, err = New(KindNone)
	require.NoError(t, err)
	require.IsType(t, Nop{}, p)
}

func TestNilToggleTargetIsSafe(t *testing.T) {
	NewToggle(nil, true).Pulse()
}
