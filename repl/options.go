package repl

import "github.com/katalvlaran/matcalc/matrix"

// Option configures a Session.
type Option func(*settings)

type settings struct {
	prompt    string
	banner    bool
	echo      bool
	color     bool
	tolerance float64
}

func defaultSettings() settings {
	return settings{tolerance: matrix.DefaultTolerance}
}

// WithPrompt sets the text written before each command is read.
func WithPrompt(p string) Option { return func(s *settings) { s.prompt = p } }

// WithBanner writes a one-line greeting when Run starts.
func WithBanner(on bool) Option { return func(s *settings) { s.banner = on } }

// WithEcho repeats every command line, prefixed by the prompt, in the
// output. The prompt is then not written on its own.
func WithEcho(on bool) Option { return func(s *settings) { s.echo = on } }

// WithColor styles error lines and the banner when the output is a terminal.
func WithColor(on bool) Option { return func(s *settings) { s.color = on } }

// WithTolerance sets the engine's zero threshold. Invalid values are ignored
// and the default is kept.
func WithTolerance(tol float64) Option {
	return func(s *settings) {
		if matrix.ValidateTolerance(tol) == nil {
			s.tolerance = tol
		}
	}
}
