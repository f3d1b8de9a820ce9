package xopt

import (
	"fmt"
	"strconv"
	"time"
)

// Typed handler constructors. Each returns a Handler that coerces the
// raw value and stores it into the field of the destination struct
// selected by sel. The destination passed to Parse must be a *D.

// destination recovers the typed destination from the opaque dst.
func destination[D any](dst any) (*D, error) {
	d, ok := dst.(*D)
	if !ok {
		return nil, fmt.Errorf("destination is %T, want %T", dst, (*D)(nil))
	}
	return d, nil
}

// StringOf returns a handler storing the raw value into a string field.
func StringOf[D any](sel func(*D) *string) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		*sel(d) = v.String()
		return nil
	}
}

// BoolOf returns a handler for flag-style options. An absent value sets
// the field to true; an explicit value is parsed with strconv.ParseBool.
func BoolOf[D any](sel func(*D) *bool) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			*sel(d) = true
			return nil
		}
		value, err := strconv.ParseBool(v.String())
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %q", opt.Name(), v.String())
		}
		*sel(d) = value
		return nil
	}
}

// CountOf returns a handler that increments an int field on every
// occurrence, for repeatable flags like -vvv.
func CountOf[D any](sel func(*D) *int) Handler {
	return func(dst any, _ *Option, _ Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		*sel(d)++
		return nil
	}
}

// IntOf returns a handler parsing the value into an int field.
func IntOf[D any](sel func(*D) *int) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		value, err := strconv.Atoi(v.String())
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", opt.Name(), v.String())
		}
		*sel(d) = value
		return nil
	}
}

// Int64Of returns a handler parsing the value into an int64 field.
func Int64Of[D any](sel func(*D) *int64) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		value, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", opt.Name(), v.String())
		}
		*sel(d) = value
		return nil
	}
}

// FloatOf returns a handler parsing the value into a float64 field.
func FloatOf[D any](sel func(*D) *float64) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		value, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %q", opt.Name(), v.String())
		}
		*sel(d) = value
		return nil
	}
}

// DurationOf returns a handler parsing the value into a time.Duration
// field using time.ParseDuration.
func DurationOf[D any](sel func(*D) *time.Duration) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		value, err := time.ParseDuration(v.String())
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %q", opt.Name(), v.String())
		}
		*sel(d) = value
		return nil
	}
}

// StringSliceOf returns a handler appending each occurrence's value to a
// []string field, for repeatable value options.
func StringSliceOf[D any](sel func(*D) *[]string) Handler {
	return func(dst any, opt *Option, v Value) error {
		d, err := destination[D](dst)
		if err != nil {
			return err
		}
		if !v.Present() {
			return fmt.Errorf("%s requires a value", opt.Name())
		}
		field := sel(d)
		*field = append(*field, v.String())
		return nil
	}
}
