package remap

import "fmt"

// Pair is an identifier and its variant (block or item data value).
type Pair struct {
	ID   int32
	Data int32
}

func (p Pair) String() string {
	return fmt.Sprintf("%d:%d", p.ID, p.Data)
}

// Overwrite describes a registration that replaced an earlier one for the
// same source key. Previous and Current are equal for an identical
// re-registration.
type Overwrite struct {
	Table    string
	From     Pair
	Previous Pair
	Current  Pair
}

// Identical reports whether the replacing registration had the same target.
func (o Overwrite) Identical() bool {
	return o.Previous == o.Current
}

// Option configures a table.
type Option func(*options)

type options struct {
	name        string
	onOverwrite func(Overwrite)
}

func defaultOptions() options {
	return options{name: "remap"}
}

// WithName names the table in Overwrite reports.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithOverwriteHook sets a function called for every registration that
// replaces an earlier one. Registration still succeeds; last write wins.
func WithOverwriteHook(fn func(Overwrite)) Option {
	return func(o *options) {
		o.onOverwrite = fn
	}
}

func (o *options) overwrite(from, prev, cur Pair) {
	if o.onOverwrite != nil {
		o.onOverwrite(Overwrite{Table: o.name, From: from, Previous: prev, Current: cur})
	}
}
