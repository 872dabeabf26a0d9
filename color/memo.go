package color

import (
	"strings"

	"github.com/prism-cli/prism/cache"
)

// Memo bundles the per-concern conversion caches so one workload's churn
// cannot evict another's hot entries. A Memo is owned by a rendering entry
// point, never shared across parallel workers.
type Memo struct {
	hex  *cache.Cache[RGB]
	ansi *cache.Cache[uint8]
	hsl  *cache.Cache[HSL]
}

// NewMemo constructs a Memo with independent capacities per concern.
func NewMemo(hexCapacity, ansiCapacity, hslCapacity int) *Memo {
	return &Memo{
		hex:  cache.New[RGB](hexCapacity),
		ansi: cache.New[uint8](ansiCapacity),
		hsl:  cache.New[HSL](hslCapacity),
	}
}

// ParseHex is ParseHex memoized on the normalized payload.
func (m *Memo) ParseHex(input string) (RGB, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(input), "#"))

	if cached, ok := m.hex.Get(key); ok {
		return cached, nil
	}

	parsed, err := ParseHex(input)
	if err != nil {
		return RGB{}, err
	}

	m.hex.Set(key, parsed)
	return parsed, nil
}

// ANSI256 is ANSI256 memoized per color.
func (m *Memo) ANSI256(c RGB) uint8 {
	key := c.Hex()

	if cached, ok := m.ansi.Get(key); ok {
		return cached
	}

	index := ANSI256(c)
	m.ansi.Set(key, index)
	return index
}

// ToHSL is RGBToHSL memoized per color.
func (m *Memo) ToHSL(c RGB) HSL {
	key := c.Hex()

	if cached, ok := m.hsl.Get(key); ok {
		return cached
	}

	converted := RGBToHSL(c)
	m.hsl.Set(key, converted)
	return converted
}

// Stats returns the counters of every concern, keyed by concern name.
func (m *Memo) Stats() map[string]cache.Stats {
	return map[string]cache.Stats{
		"hex":  m.hex.Stats(),
		"ansi": m.ansi.Stats(),
		"hsl":  m.hsl.Stats(),
	}
}

// Clear resets the storage and counters of every concern.
func (m *Memo) Clear() {
	m.hex.Clear()
	m.ansi.Clear()
	m.hsl.Clear()
}
