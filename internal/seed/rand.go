package seed

import (
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Rand is the stream driving every structural choice of a plan:
// the subset fraction, the subset itself, owners and description states.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Perm(n int) []int
}

// NewRand returns a PCG-backed stream seeded from seed
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Faker produces the human-readable content of a plan
type Faker interface {
	Name() string
	Email() string
	Title() string
	Paragraph() string
}

type fakeitFaker struct {
	f *gofakeit.Faker
}

// NewFaker returns a gofakeit-backed Faker seeded from seed
func NewFaker(seed uint64) Faker {
	return &fakeitFaker{f: gofakeit.New(seed)}
}

func (g *fakeitFaker) Name() string { return g.f.Name() }

func (g *fakeitFaker) Email() string { return strings.ToLower(g.f.Email()) }

// Title is a four-word sentence without its closing period
func (g *fakeitFaker) Title() string {
	return strings.TrimRight(g.f.Sentence(4), ".")
}

// Paragraph is two sentences of filler text
func (g *fakeitFaker) Paragraph() string {
	return g.f.Paragraph(1, 2, 8, " ")
}
