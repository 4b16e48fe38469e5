package easytest

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// goldenGamma is the odd fraction of the golden ratio, the default SplitMix
// stream increment.
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// Seed is splittable PRNG state: a stream position and an odd increment
// (gamma). Splitting is a pure function of the input seed, so the seed handed
// to any leaf depends only on its position in the traversal, never on what
// other leaves did.
type Seed struct {
	value uint64
	gamma uint64
}

// NewSeed returns the seed for a fixed stream start.
func NewSeed(value uint64) Seed {
	return Seed{value: value, gamma: goldenGamma}
}

// RandomSeed draws a fresh seed from the platform entropy source.
func RandomSeed() Seed {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("easytest: entropy source unavailable: %v", err))
	}
	return NewSeed(binary.LittleEndian.Uint64(buf[:]))
}

// Split advances the stream and returns two independent seeds, one for the
// current subtree and one for the remaining traversal. Re-splitting the same
// seed always yields the same pair.
func (s Seed) Split() (Seed, Seed) {
	v1 := s.value + s.gamma
	v2 := v1 + s.gamma
	left := Seed{value: mix64(v1), gamma: mixGamma(v2)}
	right := Seed{value: v2, gamma: s.gamma}
	return left, right
}

// Int64 collapses the seed into a value usable by conventional PRNG sources.
func (s Seed) Int64() int64 {
	return int64(mix64(s.value + s.gamma))
}

// String renders the seed as the "value:gamma" token embedded in replay
// instructions. ParseSeed round-trips it.
func (s Seed) String() string {
	return fmt.Sprintf("%d:%d", s.value, s.gamma)
}

// ParseSeed parses a "value:gamma" token produced by Seed.String.
func ParseSeed(token string) (Seed, error) {
	valueText, gammaText, ok := strings.Cut(token, ":")
	if !ok {
		return Seed{}, fmt.Errorf("seed %q: expected value:gamma", token)
	}

	value, err := strconv.ParseUint(valueText, 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("seed %q: %w", token, err)
	}

	gamma, err := strconv.ParseUint(gammaText, 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("seed %q: %w", token, err)
	}

	if gamma%2 == 0 {
		return Seed{}, fmt.Errorf("seed %q: gamma must be odd", token)
	}

	return Seed{value: value, gamma: gamma}, nil
}

// MustParseSeed is ParseSeed for tokens known to be well-formed, such as the
// ones rendered in failure output.
func MustParseSeed(token string) Seed {
	seed, err := ParseSeed(token)
	if err != nil {
		panic(err)
	}
	return seed
}

// mix64 is the SplittableRandom 64-bit finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma derives a new odd increment, re-mixing candidates with too few
// bit transitions to keep the split streams well distributed.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
