// Package grammar generates random expressions for a single cron field.
//
// Each expression is one of five syntactic kinds (single value, wildcard,
// stepped interval, list, range). Kinds are chosen uniformly so that a
// batch of expressions exercises every branch of a cron parser rather than
// mimicking real-world schedules.
package grammar

// FieldRange is the inclusive interval of values a cron field draws from.
type FieldRange struct {
	Min int
	Max int
}

// Field identifies one position of a five-field cron expression.
type Field int

// Fields of a cron expression, in expression order.
const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// Fields lists every field in the order they appear in an expression.
var Fields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// String returns the field name used in logs and errors.
func (f Field) String() string {
	switch f {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day_of_month"
	case Month:
		return "month"
	case DayOfWeek:
		return "day_of_week"
	default:
		return "unknown"
	}
}

// Range returns the interval values for f are drawn from.
// Day-of-month stops at 30 and month at 11 so that generated schedules
// avoid the calendar corners where evaluators disagree most.
func (f Field) Range() FieldRange {
	switch f {
	case Minute:
		return FieldRange{Min: 0, Max: 59}
	case Hour:
		return FieldRange{Min: 0, Max: 23}
	case DayOfMonth:
		return FieldRange{Min: 1, Max: 30}
	case Month:
		return FieldRange{Min: 1, Max: 11}
	case DayOfWeek:
		return FieldRange{Min: 0, Max: 6}
	default:
		return FieldRange{}
	}
}
