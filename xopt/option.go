package xopt

// ContextFlag represents behavior switches for a Context. Flags are
// independent bits and combine with bitwise OR.
type ContextFlag uint

const (
	// KeepFirst starts the scan at argv[0] instead of skipping the
	// program name.
	KeepFirst ContextFlag = 1 << iota
	// PosixStrict rejects any option token that appears after a
	// positional argument has been collected.
	PosixStrict
	// NoCombine rejects multi-character short clusters outright.
	NoCombine
	// SloppyShorts treats the remainder of a multi-character short
	// cluster as an inline value for the first character's option
	// instead of expanding the cluster.
	SloppyShorts
	// StrictUnknown turns unknown short/long identifiers into hard
	// errors instead of silently terminating cluster expansion.
	StrictUnknown
)

// Value carries an option's raw value into its handler. Flag-style
// invocations receive an absent Value.
type Value struct {
	raw     string
	present bool
}

// String returns the raw value text; empty for an absent Value.
func (v Value) String() string {
	return v.raw
}

// Present reports whether a value was supplied on the command line.
func (v Value) Present() bool {
	return v.present
}

// Handler binds a parsed value to the caller's destination. dst is the
// destination passed to Parse, opt the matched table entry. A non-nil
// error aborts the whole parse.
type Handler func(dst any, opt *Option, v Value) error

// Option describes one recognized option in a Context's table. At least
// one of Short and Long must be set. The table is caller-owned and must
// not change while a Context built over it is in use.
type Option struct {
	Short         rune   // single-character identifier, 0 when absent
	Long          string // long-name identifier, empty when absent
	RequiresValue bool   // whether the option consumes a value
	Handler       Handler
	Description   string // help text, optional
	Placeholder   string // value name shown in help, defaults to "value"
}

// Name returns the option's dashed spelling, preferring the long form.
func (o *Option) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Short)
}

// Context is the immutable configuration bundle for parse calls: the
// option table, behavior flags, and a diagnostic name. A Context may be
// shared read-only across concurrent Parse calls as long as each call
// gets its own destination.
type Context struct {
	name    string
	options []Option
	flags   ContextFlag
	short   map[rune]*Option
	long    map[string]*Option
}

// NewContext builds a Context over the caller's option table. The table
// is borrowed, not copied. Duplicate identifiers are not validated;
// the first table entry wins, matching linear-scan lookup order.
func NewContext(name string, options []Option, flags ContextFlag) (*Context, error) {
	ctx := &Context{
		name:    name,
		options: options,
		flags:   flags,
		short:   make(map[rune]*Option, len(options)),
		long:    make(map[string]*Option, len(options)),
	}

	for i := range options {
		opt := &options[i]
		if opt.Short == 0 && opt.Long == "" {
			return nil, NewParseError(ErrorTypeInternal,
				"option %d has neither a short nor a long identifier", i)
		}
		if opt.Short != 0 {
			if _, taken := ctx.short[opt.Short]; !taken {
				ctx.short[opt.Short] = opt
			}
		}
		if opt.Long != "" {
			if _, taken := ctx.long[opt.Long]; !taken {
				ctx.long[opt.Long] = opt
			}
		}
	}

	return ctx, nil
}

// Name returns the diagnostic name given at construction.
func (c *Context) Name() string {
	return c.name
}

// findShort performs O(1) short-identifier lookup in the option table.
func (c *Context) findShort(r rune) *Option {
	return c.short[r]
}

// findLong performs O(1) long-name lookup in the option table.
func (c *Context) findLong(name string) *Option {
	return c.long[name]
}

// longNames collects the table's long names for suggestion matching.
func (c *Context) longNames() []string {
	names := make([]string, 0, len(c.long))
	for name := range c.long {
		names = append(names, name)
	}
	return names
}

func (c *Context) has(f ContextFlag) bool {
	return c.flags&f != 0
}
