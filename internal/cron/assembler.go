package cron

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/flemzord/cronfixture/internal/grammar"
)

// Expression is a complete five-field cron expression.
type Expression struct {
	// Fields holds one expression per field, in grammar.Fields order.
	Fields [len(grammar.Fields)]grammar.Expr

	// Text is the rendered expression, fields joined by single spaces.
	Text string
}

// String returns the rendered expression.
func (e Expression) String() string { return e.Text }

// Len returns the serialized length in bytes.
func (e Expression) Len() int { return len(e.Text) }

// Assembler builds random expressions from an explicitly owned random source.
// It performs no validation; filtering belongs to the caller.
type Assembler struct {
	rng *rand.Rand
}

// NewAssembler creates an assembler drawing from rng. The assembler is not
// safe for concurrent use because rng is not.
func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{rng: rng}
}

// Assemble generates one field expression per field in order.
// A field whose draw range turns out empty aborts the whole expression;
// the returned error wraps grammar.ErrEmptyRange.
func (a *Assembler) Assemble() (Expression, error) {
	var (
		e     Expression
		parts [len(grammar.Fields)]string
	)
	for i, f := range grammar.Fields {
		fe, err := grammar.Generate(a.rng, f.Range())
		if err != nil {
			return Expression{}, fmt.Errorf("cron: %s field: %w", f, err)
		}
		e.Fields[i] = fe
		parts[i] = grammar.Render(fe)
	}
	e.Text = strings.Join(parts[:], " ")
	return e, nil
}
