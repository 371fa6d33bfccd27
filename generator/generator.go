package generator

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Key is any integer type a benchmarked table can be keyed on.
type Key interface {
	constraints.Integer
}

// DefaultMultiplicity is the Uniform divisor used when none is supplied.
const DefaultMultiplicity = 8

var (
	ErrUnknownDistribution = errors.New("unknown key distribution")
	ErrInvalidMultiplicity = errors.New("multiplicity must be at least 1")
	ErrKeySpaceExhausted   = errors.New("key type too narrow for non-matching keys")
)

type generatorOptions struct {
	multiplicity int
	src          rand.Source
	log          *slog.Logger
}

// Option customizes a single GenerateKeys or GenerateProbeKeys call.
type Option func(*generatorOptions)

// WithMultiplicity narrows the Uniform upper bound to N/multiplicity.
func WithMultiplicity(multiplicity int) Option {
	return func(o *generatorOptions) {
		o.multiplicity = multiplicity
	}
}

// WithSeed makes the call reproducible.
func WithSeed(seed uint64) Option {
	return func(o *generatorOptions) {
		o.src = rand.NewSource(seed)
	}
}

// WithSource draws from src instead of a freshly seeded source. The source
// is advanced by the call, so it must not be shared with concurrent calls.
func WithSource(src rand.Source) Option {
	return func(o *generatorOptions) {
		o.src = src
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(o *generatorOptions) {
		o.log = log
	}
}

func newGeneratorOptions(opts []Option) *generatorOptions {
	o := &generatorOptions{
		multiplicity: DefaultMultiplicity,
	}
	for _, eachOpt := range opts {
		eachOpt(o)
	}
	if o.src == nil {
		o.src = newEntropySource()
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}

// newEntropySource returns a PCG source seeded from the operating system.
func newEntropySource() rand.Source {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return rand.NewSource(binary.LittleEndian.Uint64(seed[:]))
}

// /////////////////////////////////////////////////////////////////////////////
// Key bounds
// /////////////////////////////////////////////////////////////////////////////

func isSigned[K Key]() bool {
	return ^K(0) < 0
}

func maxKey[K Key]() K {
	m := ^K(0)
	if m > 0 {
		return m
	}
	return K(^uint64(0) >> (65 - 8*unsafe.Sizeof(m)))
}

func minKey[K Key]() K {
	if isSigned[K]() {
		return ^maxKey[K]()
	}
	return 0
}

// keyFromFloat truncates toward zero, saturating at the bounds of K.
func keyFromFloat[K Key](value float64) K {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= float64(maxKey[K]()):
		return maxKey[K]()
	case value <= float64(minKey[K]()):
		return minKey[K]()
	}
	return K(value)
}

// /////////////////////////////////////////////////////////////////////////////
// Sampling
// /////////////////////////////////////////////////////////////////////////////

// keyFilter maps a raw sample to a key. Returning false rejects the sample
// and another one is drawn.
type keyFilter[K Key] func(sample float64) (K, bool)

func filterGenerate[K Key](keys []K, rander distuv.Rander, filter keyFilter[K]) {
	for i := range keys {
		for {
			key, ok := filter(rander.Rand())
			if ok {
				keys[i] = key
				break
			}
		}
	}
}

func shuffleKeys[K Key](keys []K, rng *rand.Rand) {
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

// GenerateKeys fills keys with values drawn from dist. An unrecognized dist
// returns an error wrapping ErrUnknownDistribution and leaves keys untouched.
func GenerateKeys[K Key](dist Distribution, keys []K, opts ...Option) error {
	if !dist.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDistribution, int(dist))
	}
	o := newGeneratorOptions(opts)
	if dist == Uniform && o.multiplicity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMultiplicity, o.multiplicity)
	}
	o.log.Debug("Generating keys",
		"distribution", dist.String(),
		"count", len(keys),
		"keyType", fmt.Sprintf("%T", K(0)))
	if len(keys) == 0 {
		return nil
	}

	switch dist {
	case Gaussian:
		fillGaussian(keys, o.src)
	case Geometric:
		fillGeometric(keys, o.src)
	case Uniform:
		fillUniform(keys, o.multiplicity, rand.New(o.src))
	case Unique:
		fillUnique(keys, rand.New(o.src))
	case Same:
		fillSame(keys)
	}
	return nil
}

// GenerateKeysByName is GenerateKeys with the distribution selected by its
// case-sensitive display name, e.g. "UNIQUE".
func GenerateKeysByName[K Key](name string, keys []K, opts ...Option) error {
	dist, distErr := ParseDistribution(name)
	if distErr != nil {
		return distErr
	}
	return GenerateKeys(dist, keys, opts...)
}
