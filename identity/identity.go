// Package identity supplies synthetic human attributes and identifiers.
//
// Every generator draws through a Faker handle passed in by the caller, so a run
// seeded with the same value reproduces the same dataset and no package keeps
// process-wide random state.
package identity

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// FreeEmailDomains are the mailbox providers local parts are paired with.
var FreeEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"icloud.com",
	"aol.com",
	"proton.me",
	"mail.com",
}

// Faker is the capability generators consume: plausible, human-readable values
// plus the numeric draws used for every random choice in a run.
type Faker interface {
	Name() string
	Phone() string
	// Username returns an email local part
	Username() string
	FreeEmailDomain() string
	City() string
	Company() string
	URL() string
	// Sentence returns a sentence of roughly words words
	Sentence(words int) string
	// IntRange returns a uniform integer in [min, max]
	IntRange(min, max int) int
	Bool() bool
}

// GoFaker implements Faker on top of gofakeit.
type GoFaker struct {
	f *gofakeit.Faker
}

// New returns a Faker seeded with seed. A zero seed draws a fresh seed from
// crypto randomness, so runs are not reproducible.
func New(seed uint64) *GoFaker {
	return &GoFaker{f: gofakeit.New(seed)}
}

func (g *GoFaker) Name() string    { return g.f.Name() }
func (g *GoFaker) Phone() string   { return g.f.Phone() }
func (g *GoFaker) City() string    { return g.f.City() }
func (g *GoFaker) Company() string { return g.f.Company() }
func (g *GoFaker) URL() string     { return g.f.URL() }
func (g *GoFaker) Bool() bool      { return g.f.Bool() }

// Username returns a lowercase local part.
func (g *GoFaker) Username() string {
	return strings.ToLower(g.f.Username())
}

func (g *GoFaker) FreeEmailDomain() string {
	return g.f.RandomString(FreeEmailDomains)
}

func (g *GoFaker) Sentence(words int) string {
	if words < 1 {
		words = 1
	}
	return g.f.Sentence(words)
}

func (g *GoFaker) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return g.f.IntRange(min, max)
}

// Pick returns a uniform element of values, or "" when values is empty.
func Pick(f Faker, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[f.IntRange(0, len(values)-1)]
}
