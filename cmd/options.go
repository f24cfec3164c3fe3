package cmd

// Options holds the shared command-line options for the prettydate CLI.
// Empty strings leave the configured value in place.
type Options struct {
	Format    string // Output template (%i interval, %u unit, %c "ago")
	Locale    string // Language tag for unit names
	Timezone  string // IANA zone for calendar arithmetic
	Output    string // text, table or json
	Now       string // Reference time instead of the current time
	Verbosity int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output template.
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLocale sets the language tag.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithTimezone sets the timezone used for calendar arithmetic.
func WithTimezone(tz string) Option {
	return func(o *Options) {
		o.Timezone = tz
	}
}

// WithOutput sets the output mode (text, table, json).
func WithOutput(output string) Option {
	return func(o *Options) {
		o.Output = output
	}
}

// WithNow sets the reference time.
func WithNow(now string) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
