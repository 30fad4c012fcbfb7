// Package matcalc is an interactive calculator for named matrices.
//
// What is matcalc?
//
//	A small REPL and script runner on top of a dense linear-algebra engine:
//		• Definition: type a shape, then the values one per line
//		• Arithmetic: add, subtract, multiply, scale, transpose
//		• Elimination: reduced row-echelon form, inverse, rank
//		• Determinant and Doolittle LU
//		• Integer mode for exact int64 arithmetic
//
// Everything is organized under four packages:
//
//	matrix/      Dense[T] engine: construction, kernels, Gauss-Jordan, rendering
//	workspace/   concurrency-safe table of named matrices
//	repl/        command parser, evaluator and element entry
//	config/      TOML/YAML settings with defaults and validation
//
// and one binary, cmd/matcalc, with the interactive session, "run <file>" and
// "version" commands.
//
// Quick example session:
//
//	> let A = 2 2
//	Enter values for a 2x2 matrix:
//	1
//	2
//	3
//	4
//	Successfully created matrix A
//
//	> inverse A
//	[ -2    1]
//	[1.5 -0.5]
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
