package xopt

import (
	"io"
	"strings"
)

// Usage returns the rendered help text for the Context's option table.
// Options appear in table order with aligned descriptions.
func (c *Context) Usage() string {
	var builder strings.Builder

	builder.WriteString("Usage:\n")
	builder.WriteString("  " + c.name)
	if len(c.options) > 0 {
		builder.WriteString(" [OPTION]...")
	}
	builder.WriteString(" [ARGUMENT]...\n")

	if len(c.options) == 0 {
		return builder.String()
	}

	// Calculate max display width for alignment
	maxWidth := 0
	for i := range c.options {
		if width := len(optionDisplay(&c.options[i])); width > maxWidth {
			maxWidth = width
		}
	}

	builder.WriteString("\nOptions:\n")
	for i := range c.options {
		opt := &c.options[i]
		display := optionDisplay(opt)
		builder.WriteString("  " + display)
		if opt.Description != "" {
			builder.WriteString(strings.Repeat(" ", maxWidth-len(display)+2))
			builder.WriteString(opt.Description)
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// WriteUsage writes the rendered help text to w.
func (c *Context) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, c.Usage())
	return err
}

// optionDisplay builds the left column for one option row, short form
// first so long-only options still line up.
func optionDisplay(opt *Option) string {
	var b strings.Builder
	if opt.Short != 0 {
		b.WriteString("-")
		b.WriteRune(opt.Short)
		if opt.Long != "" {
			b.WriteString(", ")
		}
	} else if opt.Long != "" {
		b.WriteString("    ")
	}
	if opt.Long != "" {
		b.WriteString("--")
		b.WriteString(opt.Long)
	}
	if opt.RequiresValue {
		b.WriteString(" ")
		b.WriteString(placeholder(opt))
	}
	return b.String()
}

func placeholder(opt *Option) string {
	if opt.Placeholder != "" {
		return opt.Placeholder
	}
	return "value"
}
