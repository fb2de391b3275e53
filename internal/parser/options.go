package parser

import "time"

// Options controls a single parse or transform call.
type Options struct {
	// PreSaveTransform enables text rewriting such as signature expansion.
	PreSaveTransform bool
	// Timestamp is used for signatures; zero means the parser's clock.
	Timestamp time.Time
}

// NewOptions returns options with the pre-save transform enabled.
func NewOptions() *Options {
	return &Options{PreSaveTransform: true}
}

// Clone returns an independent copy of the options.
func (o *Options) Clone() *Options {
	if o == nil {
		return NewOptions()
	}
	clone := *o
	return &clone
}
