// Package repl is the line-oriented front end of matcalc.
//
// A Session reads one command per line, resolves matrix names through a
// workspace.Table, calls the matrix engine and writes the rendered result.
// Engine failures are reported as messages and never end the session; only
// "q"/"quit", end of input, a read error or context cancellation do.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/workspace"
)

var log = logging.Logger("repl")

// Session is an interpreter over one element kind.
type Session[T matrix.Scalar] struct {
	in    *bufio.Scanner
	out   io.Writer
	table *workspace.Table[T]
	cfg   settings
	opts  []matrix.Option

	errStyle    lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewSession builds a session reading commands (and element values) from in
// and writing results to out.
func NewSession[T matrix.Scalar](in io.Reader, out io.Writer, opts ...Option) *Session[T] {
	cfg := defaultSettings()
	for _, o := range opts {
		o(&cfg)
	}

	r := lipgloss.NewRenderer(out)

	return &Session[T]{
		in:          bufio.NewScanner(in),
		out:         out,
		table:       workspace.New[T](),
		cfg:         cfg,
		opts:        []matrix.Option{matrix.WithTolerance(cfg.tolerance)},
		errStyle:    r.NewStyle().Foreground(lipgloss.Color("9")),
		bannerStyle: r.NewStyle().Bold(true),
	}
}

// Table exposes the session's name table.
func (s *Session[T]) Table() *workspace.Table[T] {
	return s.table
}

// Run executes commands until quit, end of input or ctx cancellation.
// End of input is a normal exit and returns nil.
func (s *Session[T]) Run(ctx context.Context) error {
	if s.cfg.banner {
		s.println(s.style(s.bannerStyle, msgBanner))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.prompt != "" && !s.cfg.echo {
			fmt.Fprint(s.out, s.cfg.prompt)
		}

		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if s.cfg.echo {
			s.println(s.cfg.prompt + line)
		}
		if quit := s.Exec(line); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether it asked to quit.
func (s *Session[T]) Exec(line string) bool {
	log.Debugf("exec %q", line)

	cmd, err := Parse(line)
	if err != nil {
		s.fail(parseMessage(cmd, err, line))
		s.println("")

		return false
	}

	switch cmd.Kind {
	case KindEmpty:
		return false
	case KindQuit:
		return true
	case KindDefine:
		s.define(cmd)
	case KindAssign:
		if m, ok := s.eval(cmd.Expr); ok {
			s.store(cmd.Name, m)
		} else {
			s.fail(fmt.Sprintf(msgCreateFailed, cmd.Name))
		}
	case KindEval:
		if m, ok := s.eval(cmd.Expr); ok {
			fmt.Fprint(s.out, matrix.Format(m))
		}
	case KindPrint:
		s.print(cmd.Name)
	case KindDet:
		s.det(cmd.Name)
	case KindRank:
		s.rank(cmd.Name)
	case KindLU:
		s.lu(cmd.Name)
	case KindList:
		s.list()
	case KindDelete:
		if err := s.table.Delete(cmd.Name); err != nil {
			s.fail(fmt.Sprintf(msgNotFound, cmd.Name))
		} else {
			s.println(fmt.Sprintf(msgDeleted, cmd.Name))
		}
	case KindHelp:
		s.println(helpText)
	}

	s.println("") // blank line after every command

	return false
}

// define reads rows*cols element lines and stores the new matrix.
func (s *Session[T]) define(cmd Command) {
	if err := matrix.ValidateShape(cmd.Rows, cmd.Cols); err != nil {
		s.fail(fmt.Sprintf(msgBadSize, fmt.Sprintf("%dx%d", cmd.Rows, cmd.Cols)))
		s.fail(fmt.Sprintf(msgCreateFailed, cmd.Name))

		return
	}

	m, err := s.readMatrix(cmd.Rows, cmd.Cols)
	if err != nil {
		s.fail(msgEntryTruncated)
		s.fail(fmt.Sprintf(msgCreateFailed, cmd.Name))

		return
	}
	s.store(cmd.Name, m)
}

func (s *Session[T]) store(name string, m *matrix.Dense[T]) {
	if err := s.table.Define(name, m); err != nil {
		s.fail(fmt.Sprintf(msgCreateFailed, name))

		return
	}
	s.println(fmt.Sprintf(msgCreated, name))
}

// entryChunk bounds the up-front allocation for element entry; the slice
// grows only as values actually arrive.
const entryChunk = 1024

// readMatrix prompts for and reads rows*cols values, one per line. A zero
// dimension yields the empty matrix without reading anything. The shape must
// already satisfy matrix.ValidateShape.
func (s *Session[T]) readMatrix(rows, cols int) (*matrix.Dense[T], error) {
	if rows == 0 || cols == 0 {
		return matrix.NewDense[T](rows, cols, nil)
	}

	s.println(fmt.Sprintf(msgEntryPrompt, rows, cols))
	total := rows * cols
	values := make([]T, 0, min(total, entryChunk))
	for len(values) < total {
		line, ok := s.readLine()
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		values = append(values, parseElement[T](line))
	}

	return matrix.NewDense(rows, cols, values)
}

// lookup resolves name, reporting a missing matrix.
func (s *Session[T]) lookup(name string) (*matrix.Dense[T], bool) {
	m, err := s.table.Lookup(name)
	if err != nil {
		s.fail(fmt.Sprintf(msgNotFound, name))

		return nil, false
	}

	return m, true
}

// lookupPair resolves both operands, reporting every missing one.
func (s *Session[T]) lookupPair(a, b string) (*matrix.Dense[T], *matrix.Dense[T], bool) {
	ma, okA := s.lookup(a)
	mb, okB := s.lookup(b)

	return ma, mb, okA && okB
}

// eval computes an expression, writing any failure message itself.
func (s *Session[T]) eval(e Expr) (*matrix.Dense[T], bool) {
	switch e.Kind {
	case ExprCopy:
		return s.lookup(e.Left)

	case ExprAdd, ExprSub:
		a, b, ok := s.lookupPair(e.Left, e.Right)
		if !ok {
			return nil, false
		}
		op := matrix.Add[T]
		if e.Kind == ExprSub {
			op = matrix.Sub[T]
		}
		res, err := op(a, b)
		if err != nil {
			s.fail(fmt.Sprintf(msgAddSub, e.Left, e.Right))

			return nil, false
		}

		return res, true

	case ExprMul:
		a, b, ok := s.lookupPair(e.Left, e.Right)
		if !ok {
			return nil, false
		}
		res, err := matrix.Mul(a, b)
		if err != nil {
			s.fail(fmt.Sprintf(msgMul, e.Left, e.Right))

			return nil, false
		}

		return res, true

	case ExprScale:
		m, ok := s.lookup(e.Left)
		if !ok {
			return nil, false
		}
		k, ok := parseScalar[T](e.Scalar)
		if !ok {
			s.fail(fmt.Sprintf(msgScale, e.Left, e.Scalar))

			return nil, false
		}
		res, err := matrix.Scale(m, k)
		if err != nil {
			s.fail(fmt.Sprintf(msgScale, e.Left, e.Scalar))

			return nil, false
		}

		return res, true

	case ExprIdentity:
		res, err := matrix.Identity[T](e.N)
		if err != nil {
			s.fail(fmt.Sprintf(msgBadSize, fmt.Sprint(e.N)))

			return nil, false
		}

		return res, true

	case ExprTranspose:
		m, ok := s.lookup(e.Left)
		if !ok {
			return nil, false
		}
		res, err := matrix.Transpose(m)
		if err != nil {
			s.fail(err.Error())

			return nil, false
		}

		return res, true

	case ExprRREF, ExprInverse:
		m, ok := s.lookup(e.Left)
		if !ok {
			return nil, false
		}
		fm, ok := asFloat(m)
		if !ok {
			s.fail(msgIntUnsupported)

			return nil, false
		}
		res, err := matrix.Reduce(fm, e.Kind == ExprInverse, s.opts...)
		if err != nil {
			s.fail(inverseMessage(err))

			return nil, false
		}

		return fromFloat[T](res), true
	}

	s.fail(msgInvalid)

	return nil, false
}

func (s *Session[T]) print(name string) {
	m, err := s.table.Lookup(name)
	if err != nil {
		s.fail(fmt.Sprintf(msgPrintNotFound, name))

		return
	}
	fmt.Fprint(s.out, matrix.Format(m))
}

func (s *Session[T]) det(name string) {
	fm, ok := s.floatOperand(name)
	if !ok {
		return
	}
	d, err := matrix.Det(fm, s.opts...)
	if errors.Is(err, matrix.ErrEmpty) {
		s.fail(msgDetEmpty)

		return
	}
	if err != nil {
		s.fail(msgDetSquare)

		return
	}
	s.println(matrix.FormatFloat(d))
}

func (s *Session[T]) rank(name string) {
	fm, ok := s.floatOperand(name)
	if !ok {
		return
	}
	r, err := matrix.Rank(fm, s.opts...)
	if err != nil {
		s.fail(err.Error())

		return
	}
	s.println(fmt.Sprint(r))
}

func (s *Session[T]) lu(name string) {
	fm, ok := s.floatOperand(name)
	if !ok {
		return
	}
	l, u, err := matrix.LU(fm, s.opts...)
	if err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			s.fail(msgLUSquare)
		} else {
			s.fail(fmt.Sprintf(msgLUFailed, name))
		}

		return
	}
	s.println("L:")
	fmt.Fprint(s.out, matrix.Format(l))
	s.println("U:")
	fmt.Fprint(s.out, matrix.Format(u))
}

// floatOperand resolves name and checks the session works on floats.
func (s *Session[T]) floatOperand(name string) (*matrix.Float, bool) {
	m, ok := s.lookup(name)
	if !ok {
		return nil, false
	}
	fm, ok := asFloat(m)
	if !ok {
		s.fail(msgIntUnsupported)
	}

	return fm, ok
}

func (s *Session[T]) list() {
	entries := s.table.Entries()
	if len(entries) == 0 {
		s.println(msgNoMatrices)

		return
	}
	for _, e := range entries {
		s.println(fmt.Sprintf("%s %dx%d", e.Name, e.Rows, e.Cols))
	}
}

// readLine returns the next input line without its terminator.
func (s *Session[T]) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *Session[T]) println(text string) {
	fmt.Fprintln(s.out, text)
}

// fail writes a user-visible error line.
func (s *Session[T]) fail(msg string) {
	s.println(s.style(s.errStyle, msg))
}

func (s *Session[T]) style(st lipgloss.Style, text string) string {
	if !s.cfg.color {
		return text
	}

	return st.Render(text)
}
