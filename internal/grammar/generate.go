package grammar

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyRange is returned when a draw has no admissible value, which
// happens when a strictly increasing form starts at the field maximum.
// Callers discard the whole expression attempt and retry.
var ErrEmptyRange = errors.New("empty draw range")

// Generate draws a field expression for r, choosing its kind uniformly.
func Generate(rng *rand.Rand, r FieldRange) (Expr, error) {
	return GenerateKind(rng, r, Kinds[rng.IntN(len(Kinds))])
}

// GenerateKind draws a field expression of kind k for r.
func GenerateKind(rng *rand.Rand, r FieldRange, k Kind) (Expr, error) {
	var (
		e   Expr
		err error
	)
	switch k {
	case KindSingle:
		e, err = genSingle(rng, r)
	case KindWildcard:
		e, err = genWildcard(rng, r)
	case KindStep:
		e, err = genStep(rng, r)
	case KindList:
		e, err = genList(rng, r)
	case KindRange:
		e, err = genRange(rng, r)
	default:
		return nil, fmt.Errorf("grammar: unknown kind %d", int(k))
	}
	if err != nil {
		return nil, fmt.Errorf("grammar: %s in [%d,%d]: %w", k, r.Min, r.Max, err)
	}
	return e, nil
}

func genSingle(rng *rand.Rand, r FieldRange) (Expr, error) {
	v, err := draw(rng, r.Min, r.Max)
	if err != nil {
		return nil, err
	}
	return Single{Value: v}, nil
}

func genWildcard(rng *rand.Rand, r FieldRange) (Expr, error) {
	if rng.IntN(2) == 0 {
		return Wildcard{}, nil
	}
	k, err := draw(rng, 1, r.Max)
	if err != nil {
		return nil, err
	}
	return Wildcard{Step: k}, nil
}

func genStep(rng *rand.Rand, r FieldRange) (Expr, error) {
	form := StepForm(rng.IntN(3))
	base, err := draw(rng, r.Min, r.Max)
	if err != nil {
		return nil, err
	}
	period, err := draw(rng, 1, r.Max)
	if err != nil {
		return nil, err
	}
	s := Step{Base: base, Period: period, Form: form}
	if form == StepPlain {
		return s, nil
	}
	if s.Upper, err = draw(rng, base+1, r.Max); err != nil {
		return nil, err
	}
	return s, nil
}

func genList(rng *rand.Rand, r FieldRange) (Expr, error) {
	var l List
	lo := r.Min
	for i := range l.Values {
		v, err := draw(rng, lo, r.Max)
		if err != nil {
			return nil, err
		}
		l.Values[i] = v
		lo = v + 1
	}
	return l, nil
}

func genRange(rng *rand.Rand, r FieldRange) (Expr, error) {
	lo, err := draw(rng, r.Min, r.Max)
	if err != nil {
		return nil, err
	}
	hi, err := draw(rng, lo+1, r.Max)
	if err != nil {
		return nil, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// draw returns a uniform integer in [lo, hi].
func draw(rng *rand.Rand, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: [%d,%d]", ErrEmptyRange, lo, hi)
	}
	return lo + rng.IntN(hi-lo+1), nil
}
