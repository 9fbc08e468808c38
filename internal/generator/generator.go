// Package generator builds keyboard pools and trial grids.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/verte-zerg/gridmem/internal/alphabet"
	"github.com/verte-zerg/gridmem/internal/model"
)

// MaxLetterKeys caps the keyboard size for letter pools.
const MaxLetterKeys = 18

var (
	// ErrEmptyPool is returned when a grid is requested from an empty pool.
	ErrEmptyPool = errors.New("symbol pool is empty")
	// ErrInvalidSize is returned for a non-positive grid size.
	ErrInvalidSize = errors.New("grid size must be positive")
)

// digitKeys follows keypad order with zero last.
var digitKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// DigitKeys returns the fixed digit pool.
func DigitKeys() []string {
	out := make([]string, len(digitKeys))
	copy(out, digitKeys)
	return out
}

// Generator produces randomized pools and grids.
type Generator struct {
	rnd     *rand.Rand
	catalog *alphabet.Catalog
}

// New returns a Generator seeded with the current time.
func New(catalog *alphabet.Catalog) *Generator {
	return NewWithSource(catalog, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator driven by src.
func NewWithSource(catalog *alphabet.Catalog, src rand.Source) *Generator {
	if catalog == nil {
		catalog = alphabet.Default()
	}
	return &Generator{rnd: rand.New(src), catalog: catalog}
}

// Pool builds the keyboard symbols for a trial.
func (g *Generator) Pool(mode model.Mode, language string, mixed []string) []string {
	switch mode {
	case model.ModeLetters:
		return g.letterPool(g.catalog.Lookup(language))
	case model.ModeMixed:
		var all []string
		for _, lang := range mixed {
			all = append(all, g.catalog.Lookup(lang)...)
		}
		return g.letterPool(all)
	default:
		return DigitKeys()
	}
}

func (g *Generator) letterPool(symbols []string) []string {
	pool := distinct(symbols)
	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > MaxLetterKeys {
		pool = pool[:MaxLetterKeys]
	}
	return pool
}

// Grid samples size*size cells uniformly with replacement from pool.
func (g *Generator) Grid(size int, pool []string) ([]string, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	total := size * size
	grid := make([]string, 0, total)
	for i := 0; i < total; i++ {
		grid = append(grid, pool[g.rnd.Intn(len(pool))])
	}
	return grid, nil
}

func distinct(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
