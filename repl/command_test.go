package repl_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/repl"
	"github.com/stretchr/testify/require"
)

// TestParseCommands covers every top-level form.
func TestParseCommands(t *testing.T) {
	cases := []struct {
		line string
		want repl.Command
	}{
		{"", repl.Command{Kind: repl.KindEmpty}},
		{"   \t ", repl.Command{Kind: repl.KindEmpty}},
		{"q", repl.Command{Kind: repl.KindQuit}},
		{"QUIT", repl.Command{Kind: repl.KindQuit}},
		{"let A = 2 3", repl.Command{Kind: repl.KindDefine, Name: "A", Rows: 2, Cols: 3}},
		{"LET a = 0 0", repl.Command{Kind: repl.KindDefine, Name: "a", Rows: 0, Cols: 0}},
		{"let C = A + B", repl.Command{Kind: repl.KindAssign, Name: "C",
			Expr: repl.Expr{Kind: repl.ExprAdd, Left: "A", Right: "B"}}},
		{"let I = identity 3", repl.Command{Kind: repl.KindAssign, Name: "I",
			Expr: repl.Expr{Kind: repl.ExprIdentity, N: 3}}},
		{"print A", repl.Command{Kind: repl.KindPrint, Name: "A"}},
		{"det M", repl.Command{Kind: repl.KindDet, Name: "M"}},
		{"rank M", repl.Command{Kind: repl.KindRank, Name: "M"}},
		{"lu M", repl.Command{Kind: repl.KindLU, Name: "M"}},
		{"list", repl.Command{Kind: repl.KindList}},
		{"del M", repl.Command{Kind: repl.KindDelete, Name: "M"}},
		{"help", repl.Command{Kind: repl.KindHelp}},
		{"A", repl.Command{Kind: repl.KindEval, Expr: repl.Expr{Kind: repl.ExprCopy, Left: "A"}}},
	}
	for _, tc := range cases {
		got, err := repl.Parse(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, got, tc.line)
	}
}

// TestParseExpr checks operator and keyword expressions.
func TestParseExpr(t *testing.T) {
	cases := []struct {
		tokens []string
		want   repl.Expr
	}{
		{[]string{"A", "-", "B"}, repl.Expr{Kind: repl.ExprSub, Left: "A", Right: "B"}},
		{[]string{"A", "*", "B"}, repl.Expr{Kind: repl.ExprMul, Left: "A", Right: "B"}},
		{[]string{"2.5", "*", "A"}, repl.Expr{Kind: repl.ExprScale, Left: "A", Scalar: "2.5"}},
		{[]string{"A", "*", "-3"}, repl.Expr{Kind: repl.ExprScale, Left: "A", Scalar: "-3"}},
		{[]string{"rref", "M"}, repl.Expr{Kind: repl.ExprRREF, Left: "M"}},
		{[]string{"Inverse", "M"}, repl.Expr{Kind: repl.ExprInverse, Left: "M"}},
		{[]string{"inv", "M"}, repl.Expr{Kind: repl.ExprInverse, Left: "M"}},
		{[]string{"transpose", "M"}, repl.Expr{Kind: repl.ExprTranspose, Left: "M"}},
	}
	for _, tc := range cases {
		got, err := repl.ParseExpr(tc.tokens)
		require.NoError(t, err, tc.tokens)
		require.Equal(t, tc.want, got, tc.tokens)
	}
}

// TestParseErrors keeps the partially parsed command for error reporting.
func TestParseErrors(t *testing.T) {
	cmd, err := repl.Parse("print")
	require.ErrorIs(t, err, repl.ErrMissingArgument)
	require.Equal(t, repl.KindPrint, cmd.Kind)

	cmd, err = repl.Parse("let X = foo bar baz")
	require.ErrorIs(t, err, repl.ErrInvalidCommand)
	require.Equal(t, "X", cmd.Name)

	cmd, err = repl.Parse("let X 2 2")
	require.ErrorIs(t, err, repl.ErrInvalidCommand)
	require.Equal(t, "X", cmd.Name)

	_, err = repl.Parse("identity -1")
	require.ErrorIs(t, err, repl.ErrBadSize)

	_, err = repl.Parse("frobnicate the matrix")
	require.ErrorIs(t, err, repl.ErrInvalidCommand)
}
