package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/gridmem/internal/model"
)

type memBackend struct {
	values  map[string]string
	loadErr error
}

func (b *memBackend) LoadSettings(context.Context) (map[string]string, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	out := map[string]string{}
	for k, v := range b.values {
		out[k] = v
	}
	return out, nil
}

func (b *memBackend) SaveSettings(_ context.Context, values map[string]string) error {
	if b.values == nil {
		b.values = map[string]string{}
	}
	for k, v := range values {
		b.values[k] = v
	}
	return nil
}

func TestDecodeEmptyUsesDefaults(t *testing.T) {
	s := Decode(nil)
	require.Equal(t, Defaults(), s)
	cfg := TrialConfig(s)
	require.Equal(t, 5, cfg.Size)
	require.Equal(t, model.ModeDigits, cfg.Mode)
	require.Equal(t, "Russian", cfg.Language)
	require.Equal(t, 5*time.Second, cfg.MemorizeTime)
	require.Empty(t, cfg.MixedLanguages)
}

func TestDecodeMalformedFieldsFallBackIndividually(t *testing.T) {
	s := Decode(map[string]string{
		KeyTableSize:      "7x8",
		KeyTableMode:      "Letters",
		KeyMemoryTime:     "soon",
		KeyMemoryNoTimer:  "maybe",
		KeyVibration:      "false",
		KeyMixedAlphabets: "Thai||Lao|Thai",
	})
	require.Equal(t, 5, s.TableSize)
	require.Equal(t, model.ModeLetters, s.Mode)
	require.Equal(t, 5, s.MemorizeSeconds)
	require.False(t, s.NoTimer)
	require.False(t, s.Vibration)
	require.Equal(t, []string{"Thai", "Lao"}, s.MixedAlphabets)
}

func TestParseTableSize(t *testing.T) {
	cases := map[string]int{"3x3": 3, "15x15": 15, " 7X7 ": 7, "9": 9}
	for in, want := range cases {
		got, ok := ParseTableSize(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "2x2", "16x16", "5x6", "axa", "x5"} {
		_, ok := ParseTableSize(in)
		require.False(t, ok, in)
	}
}

func TestNoTimerDropsMemorizeTime(t *testing.T) {
	s := Defaults()
	s.NoTimer = true
	require.False(t, TrialConfig(s).Timed())
}

func TestEncodeDecodeKeepsMixedOrder(t *testing.T) {
	s := Defaults()
	s.Mode = model.ModeMixed
	s.MixedAlphabets = []string{"Hebrew", "Arabic"}
	s.DarkTheme = true
	encoded := Encode(s)
	require.Equal(t, "Hebrew|Arabic", encoded[KeyMixedAlphabets])
	require.Equal(t, "MixedAlphabets", encoded[KeyTableMode])
	require.Equal(t, s, Decode(encoded))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(KeyTableSize, "4x4"))
	require.Error(t, Validate(KeyTableSize, "1x1"))
	require.NoError(t, Validate(KeyTableMode, "mixedalphabets"))
	require.Error(t, Validate(KeyTableMode, "Emoji"))
	require.Error(t, Validate(KeyMemoryTime, "0"))
	require.Error(t, Validate(KeyVibration, "sometimes"))
	require.Error(t, Validate("font", "mono"))
	require.NoError(t, Validate(KeyMixedAlphabets, ""))
}

func TestRepositoryLoadOverlaysBase(t *testing.T) {
	base := Defaults()
	base.TableSize = 6
	base.Language = "Thai"
	backend := &memBackend{values: map[string]string{KeyLanguage: "Lao", KeyTableSize: "bogus"}}
	repo := NewRepository(backend, base)

	s, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Lao", s.Language)
	require.Equal(t, 6, s.TableSize)
	require.Equal(t, s, repo.Current())
}

func TestRepositoryLoadErrorReturnsBase(t *testing.T) {
	backend := &memBackend{loadErr: errors.New("disk gone")}
	repo := NewRepository(backend, Defaults())
	s, err := repo.Load(context.Background())
	require.Error(t, err)
	require.Equal(t, Defaults(), s)
}

func TestRepositorySaveNotifiesObservers(t *testing.T) {
	backend := &memBackend{}
	repo := NewRepository(backend, Defaults())
	var seen []model.Settings
	repo.Observe(func(s model.Settings) { seen = append(seen, s) })

	s, err := repo.Set(context.Background(), KeyTableSize, "8x8")
	require.NoError(t, err)
	require.Equal(t, 8, s.TableSize)
	require.Len(t, seen, 1)
	require.Equal(t, 8, seen[0].TableSize)
	require.Equal(t, "8x8", backend.values[KeyTableSize])

	_, err = repo.Set(context.Background(), KeyTableSize, "99")
	require.Error(t, err)
	require.Len(t, seen, 1)
	require.Equal(t, 8, repo.Current().TableSize)
}
