package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGlyphs sets the piece glyph set.
func (b *ConfigBuilder) WithGlyphs(g GlyphSet) *ConfigBuilder {
	b.cfg.Display.Glyphs = g
	return b
}

// WithColour enables the ANSI colour board.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithCoordinates enables file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithSVGFile sets the SVG diagram output file.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Display.SVGFile = path
	return b
}

// WithHistoryDir sets the history export directory.
func (b *ConfigBuilder) WithHistoryDir(dir string) *ConfigBuilder {
	b.cfg.History.Dir = dir
	return b
}

// WithAutoExport enables history export when the game ends.
func (b *ConfigBuilder) WithAutoExport(enabled bool) *ConfigBuilder {
	b.cfg.History.AutoExport = enabled
	return b
}

// WithHistoryFormat sets the history export format.
func (b *ConfigBuilder) WithHistoryFormat(f HistoryFormat) *ConfigBuilder {
	b.cfg.History.Format = f
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithPerft sets the perft depth.
func (b *ConfigBuilder) WithPerft(depth int) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
