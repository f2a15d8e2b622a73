package grammar

import (
	"fmt"
	"strconv"
)

// Kind is the top-level syntactic form of a field expression.
type Kind int

// Expression kinds.
const (
	KindSingle Kind = iota
	KindWildcard
	KindStep
	KindList
	KindRange
)

// Kinds lists every kind. Generate picks among them uniformly.
var Kinds = [...]Kind{KindSingle, KindWildcard, KindStep, KindList, KindRange}

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindWildcard:
		return "wildcard"
	case KindStep:
		return "step"
	case KindList:
		return "list"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Expr is a field expression. The set of implementations is closed:
// Single, Wildcard, Step, List and Range.
type Expr interface {
	Kind() Kind
	sealed()
}

// Single is one literal value, e.g. "5".
type Single struct {
	Value int
}

// Wildcard is "*" when Step is zero, "*/Step" otherwise.
type Wildcard struct {
	Step int
}

// StepForm selects how a Step expression is rendered.
type StepForm int

// Step sub-forms.
const (
	StepPlain StepForm = iota // b/p
	StepRange                 // b-u/p
	StepList                  // b/p,u
)

// Step is a stepped interval starting at Base. Upper is only used by the
// StepRange and StepList forms and is always greater than Base.
type Step struct {
	Base   int
	Period int
	Form   StepForm
	Upper  int
}

// List is three strictly increasing values, e.g. "1,4,9".
type List struct {
	Values [3]int
}

// Range is an inclusive interval with Lo < Hi, e.g. "3-17".
type Range struct {
	Lo int
	Hi int
}

func (Single) Kind() Kind   { return KindSingle }
func (Wildcard) Kind() Kind { return KindWildcard }
func (Step) Kind() Kind     { return KindStep }
func (List) Kind() Kind     { return KindList }
func (Range) Kind() Kind    { return KindRange }

func (Single) sealed()   {}
func (Wildcard) sealed() {}
func (Step) sealed()     {}
func (List) sealed()     {}
func (Range) sealed()    {}

// Render returns the cron syntax for e.
func Render(e Expr) string {
	switch v := e.(type) {
	case Single:
		return strconv.Itoa(v.Value)
	case Wildcard:
		if v.Step == 0 {
			return "*"
		}
		return "*/" + strconv.Itoa(v.Step)
	case Step:
		switch v.Form {
		case StepRange:
			return fmt.Sprintf("%d-%d/%d", v.Base, v.Upper, v.Period)
		case StepList:
			return fmt.Sprintf("%d/%d,%d", v.Base, v.Period, v.Upper)
		default:
			return fmt.Sprintf("%d/%d", v.Base, v.Period)
		}
	case List:
		return fmt.Sprintf("%d,%d,%d", v.Values[0], v.Values[1], v.Values[2])
	case Range:
		return fmt.Sprintf("%d-%d", v.Lo, v.Hi)
	default:
		panic(fmt.Sprintf("grammar: unknown expression type %T", e))
	}
}
