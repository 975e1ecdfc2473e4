package wordify

// ConvertOptions holds options for conversion.
type ConvertOptions struct {
	Format SourceFormat
	Config *RenderConfig
	Title  string
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithSourceFormat sets how the source document is parsed.
func WithSourceFormat(format SourceFormat) Option {
	return func(opts *ConvertOptions) {
		opts.Format = format
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithTitle sets the document title, overriding any title found in the source.
func WithTitle(title string) Option {
	return func(opts *ConvertOptions) {
		opts.Title = title
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Format: FormatHTML,
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}
