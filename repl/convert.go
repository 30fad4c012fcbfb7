package repl

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// parseElement reads one entered value: the first whitespace-separated token
// of line, or zero when the line is blank or the token is not a number.
func parseElement[T matrix.Scalar](line string) T {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}
	v, ok := parseScalar[T](fields[0])
	if !ok {
		log.Debugf("treating %q as 0", fields[0])

		return 0
	}

	return v
}

// parseScalar converts tok to the session's element kind. Integer sessions
// accept only integral literals.
func parseScalar[T matrix.Scalar](tok string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, false
		}

		return T(n), true
	default:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, false
		}

		return T(f), true
	}
}

// asFloat narrows m to a float64 matrix. Float-only operations use it to
// refuse integer sessions.
func asFloat[T matrix.Scalar](m *matrix.Dense[T]) (*matrix.Float, bool) {
	fm, ok := any(m).(*matrix.Float)

	return fm, ok
}

// fromFloat is the inverse of asFloat for sessions already known to be float.
func fromFloat[T matrix.Scalar](m *matrix.Float) *matrix.Dense[T] {
	return any(m).(*matrix.Dense[T])
}

// lastToken returns the final whitespace-separated token of line.
func lastToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}
