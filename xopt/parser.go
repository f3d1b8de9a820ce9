package xopt

import (
	"strings"

	"github.com/zeit/xopt/internal/fuzzy"
)

// parseState represents the current state of the scanner state machine
type parseState int

const (
	stateScanning   parseState = iota // classifying tokens
	stateForwarding                   // saw bare "--": everything left is positional
	stateDone
)

// extrasInit is the initial capacity of the extras buffer.
const extrasInit = 10

// suggestionDistance is the maximum edit distance for unknown-option
// suggestions.
const suggestionDistance = 2

// scanner walks one argument vector left to right, single pass. Each
// token is classified exactly once; the position only moves forward,
// plus one step of lookahead when an option claims the next token as
// its value.
type scanner struct {
	ctx    *Context
	argv   []string
	dst    any
	pos    int
	state  parseState
	extras []string
}

// Parse scans argv, dispatching every recognized option to its handler
// with dst, and returns the positional arguments in input order. argv[0]
// is skipped unless the Context carries KeepFirst. The scan stops at the
// first error, in which case no extras are returned.
func (c *Context) Parse(argv []string, dst any) ([]string, error) {
	s := &scanner{
		ctx:    c,
		argv:   argv,
		dst:    dst,
		extras: make([]string, 0, extrasInit),
	}
	if !c.has(KeepFirst) {
		s.pos = 1
	}

	for ; s.pos < len(s.argv); s.pos++ {
		if err := s.scanToken(s.argv[s.pos]); err != nil {
			return nil, err
		}
	}
	s.state = stateDone

	return s.extras, nil
}

// scanToken classifies a single token by its dash prefix and dispatches
// it: zero dashes is a positional, one dash a short cluster, two dashes
// a long option.
func (s *scanner) scanToken(tok string) error {
	if s.state == stateForwarding {
		s.extras = append(s.extras, tok)
		return nil
	}

	dashes := dashCount(tok)
	if dashes == 0 {
		s.extras = append(s.extras, tok)
		return nil
	}

	// Option token. The ordering check runs before dispatch so a
	// rejected option produces no handler side effects. A bare "-"
	// counts as an option token here.
	if s.ctx.has(PosixStrict) && len(s.extras) > 0 {
		return &ParseError{
			Type:    ErrorTypeOptionsAfterArgs,
			Message: "options cannot be specified after arguments: " + tok,
			Option:  tok,
		}
	}

	if dashes == 1 {
		return s.scanShort(tok)
	}
	return s.scanLong(tok)
}

// scanShort handles a one-dash token. Depending on Context flags the
// payload is a rejected combination, an inline sloppy value, or a
// cluster expanded one character at a time.
func (s *scanner) scanShort(tok string) error {
	cluster := []rune(tok[1:])

	if len(cluster) > 1 && s.ctx.has(NoCombine) && !s.ctx.has(SloppyShorts) {
		return &ParseError{
			Type:    ErrorTypeCombined,
			Message: "short options cannot be combined: " + tok,
			Option:  tok,
		}
	}

	if len(cluster) > 1 && s.ctx.has(SloppyShorts) {
		// First character names the option, the rest of the cluster is
		// its inline value. RequiresValue is not consulted; the handler
		// owns validating the value it receives.
		opt := s.ctx.findShort(cluster[0])
		if opt == nil {
			if s.ctx.has(StrictUnknown) {
				return s.unknownShort(cluster[0])
			}
			return nil
		}
		return s.invoke(opt, Value{raw: string(cluster[1:]), present: true})
	}

	for i, r := range cluster {
		opt := s.ctx.findShort(r)
		if opt == nil {
			if s.ctx.has(StrictUnknown) {
				return s.unknownShort(r)
			}
			// An unrecognized short flag terminates cluster expansion:
			// the rest of the token is dropped without error.
			return nil
		}

		if !opt.RequiresValue {
			if err := s.invoke(opt, Value{}); err != nil {
				return err
			}
			continue
		}

		// Value-requiring options must close the cluster; the value is
		// the next argument-vector element.
		if i != len(cluster)-1 {
			return &ParseError{
				Type:    ErrorTypeCombinedOrdering,
				Message: "combined short option requiring value not last: -" + string(r),
				Option:  "-" + string(r),
			}
		}
		if s.pos+1 >= len(s.argv) {
			return &ParseError{
				Type:    ErrorTypeMissingValue,
				Message: "missing option value: -" + string(r),
				Option:  "-" + string(r),
			}
		}
		s.pos++
		return s.invoke(opt, Value{raw: s.argv[s.pos], present: true})
	}

	return nil
}

// scanLong handles a two-dash token: the bare "--" forwarding sentinel,
// or a long option with an optional "=value" part.
func (s *scanner) scanLong(tok string) error {
	body := tok[2:]
	if body == "" {
		// Everything after "--" forwards straight to extras.
		s.state = stateForwarding
		return nil
	}

	name, inline, hasInline := strings.Cut(body, "=")
	opt := s.ctx.findLong(name)
	if opt == nil {
		if s.ctx.has(StrictUnknown) {
			return &ParseError{
				Type:       ErrorTypeUnknownOption,
				Message:    "invalid argument: --" + name,
				Option:     "--" + name,
				Suggestion: fuzzy.FindBestOption(name, s.ctx.longNames(), suggestionDistance),
			}
		}
		return nil
	}

	if hasInline {
		// An inline value binds even for options that declare no value,
		// mirroring sloppy short semantics; the handler validates it.
		return s.invoke(opt, Value{raw: inline, present: true})
	}
	if !opt.RequiresValue {
		return s.invoke(opt, Value{})
	}
	if s.pos+1 >= len(s.argv) {
		return &ParseError{
			Type:    ErrorTypeMissingValue,
			Message: "missing option value: --" + name,
			Option:  "--" + name,
		}
	}
	s.pos++
	return s.invoke(opt, Value{raw: s.argv[s.pos], present: true})
}

// invoke hands the matched option and value to the caller's sink. A sink
// failure is terminal for the whole parse. Handler errors that are not
// already a *ParseError are wrapped so the caller still gets a category.
func (s *scanner) invoke(opt *Option, v Value) error {
	if opt.Handler == nil {
		return nil
	}
	err := opt.Handler(s.dst, opt, v)
	if err == nil {
		return nil
	}
	if perr, ok := err.(*ParseError); ok {
		return perr
	}
	return &ParseError{
		Type:    ErrorTypeHandler,
		Message: err.Error(),
		Option:  opt.Name(),
		Cause:   err,
	}
}

func (s *scanner) unknownShort(r rune) error {
	return &ParseError{
		Type:    ErrorTypeUnknownOption,
		Message: "invalid argument: -" + string(r),
		Option:  "-" + string(r),
	}
}

// dashCount counts leading '-' characters, capped at 2.
func dashCount(tok string) int {
	n := 0
	for n < 2 && n < len(tok) && tok[n] == '-' {
		n++
	}
	return n
}
