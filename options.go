package triangle

import "log/slog"

// Defaults used by DefaultConfig.
const (
	DefaultWidth  = 1080
	DefaultHeight = 720
	DefaultTitle  = "Hello Triangle from Go GL"
)

// Config holds window and context settings.
type Config struct {
	Width  int
	Height int
	Title  string

	// Context hints
	ContextMajor      int
	ContextMinor      int
	CoreProfile       bool
	ForwardCompatible bool
	Resizable         bool

	ClearColor Color

	// Logger receives diagnostics. Nil means the package logger.
	Logger *slog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithClearColor sets the color the framebuffer is cleared to each frame.
func WithClearColor(color Color) Option {
	return func(c *Config) { c.ClearColor = color }
}

// WithContextVersion requests a specific OpenGL context version.
func WithContextVersion(major, minor int) Option {
	return func(c *Config) { c.ContextMajor, c.ContextMinor = major, minor }
}

// WithLogger routes diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// DefaultConfig returns the 1080x720 OpenGL 3.3 core configuration.
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Title:             DefaultTitle,
		ContextMajor:      3,
		ContextMinor:      3,
		CoreProfile:       true,
		ForwardCompatible: true,
		Resizable:         true,
		ClearColor:        Color{0, 0, 0, 1},
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return defaultLogger
}
