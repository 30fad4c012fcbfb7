package repl

import (
	"errors"
	"strconv"
	"strings"
)

// Kind identifies a top-level command.
type Kind int

const (
	KindEmpty   Kind = iota // blank line
	KindQuit                // q | quit
	KindDefine              // let <name> = <rows> <cols>
	KindAssign              // let <name> = <expr>
	KindPrint               // print <name>
	KindDet                 // det <name>
	KindRank                // rank <name>
	KindLU                  // lu <name>
	KindList                // list
	KindDelete              // del <name>
	KindHelp                // help
	KindEval                // <expr>
)

// ExprKind identifies an expression that yields a matrix.
type ExprKind int

const (
	ExprCopy        ExprKind = iota // <name>
	ExprAdd                         // <a> + <b>
	ExprSub                         // <a> - <b>
	ExprMul                         // <a> * <b>
	ExprScale                       // <scalar> * <name> | <name> * <scalar>
	ExprIdentity                    // identity <n>
	ExprRREF                        // rref <name>
	ExprInverse                     // inverse|inv <name>
	ExprTranspose                   // transpose <name>
)

var (
	// ErrInvalidCommand is returned for input that matches no grammar rule.
	ErrInvalidCommand = errors.New("repl: invalid command")

	// ErrMissingArgument is returned when a keyword lacks its operand.
	ErrMissingArgument = errors.New("repl: missing argument")

	// ErrBadSize is returned when a dimension is not a non-negative integer.
	ErrBadSize = errors.New("repl: invalid size")
)

// Expr is a parsed matrix expression. Scalar keeps the raw token so the
// session can parse it for its own element kind.
type Expr struct {
	Kind   ExprKind
	Left   string
	Right  string
	Scalar string
	N      int
}

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Name string // target of let/print/det/rank/lu/del
	Rows int    // KindDefine only
	Cols int    // KindDefine only
	Expr Expr   // KindAssign and KindEval
}

// Parse turns one input line into a Command.
// Keywords match case-insensitively; matrix names keep their case.
// On failure the returned Command still carries Kind and Name when they
// could be determined, so callers can report "Error creating matrix <name>".
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Kind: KindEmpty}, nil
	}

	switch strings.ToLower(tokens[0]) {
	case "q", "quit":
		return Command{Kind: KindQuit}, nil
	case "let":
		return parseLet(tokens)
	case "print":
		return named(KindPrint, tokens)
	case "det":
		return named(KindDet, tokens)
	case "rank":
		return named(KindRank, tokens)
	case "lu":
		return named(KindLU, tokens)
	case "del", "delete":
		return named(KindDelete, tokens)
	case "list", "ls":
		return Command{Kind: KindList}, nil
	case "help", "?":
		return Command{Kind: KindHelp}, nil
	}

	expr, err := ParseExpr(tokens)
	if err != nil {
		return Command{Kind: KindEval}, err
	}

	return Command{Kind: KindEval, Expr: expr}, nil
}

// named parses "<keyword> <name>".
func named(kind Kind, tokens []string) (Command, error) {
	if len(tokens) < 2 {
		return Command{Kind: kind}, ErrMissingArgument
	}

	return Command{Kind: kind, Name: tokens[1]}, nil
}

// parseLet handles both "let <name> = <rows> <cols>" and "let <name> = <expr>".
// Two non-negative integers after "=" always mean element entry.
func parseLet(tokens []string) (Command, error) {
	if len(tokens) < 2 {
		return Command{Kind: KindAssign}, ErrMissingArgument
	}
	name := tokens[1]
	if len(tokens) < 4 || tokens[2] != "=" {
		return Command{Kind: KindAssign, Name: name}, ErrInvalidCommand
	}

	rest := tokens[3:]
	if len(rest) == 2 {
		rows, errR := parseSize(rest[0])
		cols, errC := parseSize(rest[1])
		if errR == nil && errC == nil {
			return Command{Kind: KindDefine, Name: name, Rows: rows, Cols: cols}, nil
		}
	}

	expr, err := ParseExpr(rest)
	if err != nil {
		return Command{Kind: KindAssign, Name: name}, err
	}

	return Command{Kind: KindAssign, Name: name, Expr: expr}, nil
}

// ParseExpr parses the tokens of a matrix expression.
func ParseExpr(tokens []string) (Expr, error) {
	switch {
	case len(tokens) == 1:
		return Expr{Kind: ExprCopy, Left: tokens[0]}, nil

	case len(tokens) >= 3 && (tokens[1] == "+" || tokens[1] == "-"):
		kind := ExprAdd
		if tokens[1] == "-" {
			kind = ExprSub
		}

		return Expr{Kind: kind, Left: tokens[0], Right: tokens[2]}, nil

	case len(tokens) >= 3 && tokens[1] == "*":
		if isNumber(tokens[0]) {
			return Expr{Kind: ExprScale, Scalar: tokens[0], Left: tokens[2]}, nil
		}
		if isNumber(tokens[2]) {
			return Expr{Kind: ExprScale, Scalar: tokens[2], Left: tokens[0]}, nil
		}

		return Expr{Kind: ExprMul, Left: tokens[0], Right: tokens[2]}, nil
	}

	if len(tokens) < 2 {
		return Expr{}, ErrInvalidCommand
	}

	switch strings.ToLower(tokens[0]) {
	case "identity":
		n, err := parseSize(tokens[1])
		if err != nil {
			return Expr{}, err
		}

		return Expr{Kind: ExprIdentity, N: n}, nil
	case "rref":
		return Expr{Kind: ExprRREF, Left: tokens[1]}, nil
	case "inverse", "inv":
		return Expr{Kind: ExprInverse, Left: tokens[1]}, nil
	case "transpose":
		return Expr{Kind: ExprTranspose, Left: tokens[1]}, nil
	}

	return Expr{}, ErrInvalidCommand
}

// parseSize accepts a non-negative decimal integer.
func parseSize(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, ErrBadSize
	}

	return n, nil
}

// isNumber reports whether tok reads as a number, which is how scalar
// operands are told apart from matrix names.
func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)

	return err == nil
}
