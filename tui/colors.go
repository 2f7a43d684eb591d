package tui

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BoldWhite = "\033[1;37m"
)

// Colorizer wraps text with ANSI color codes if colors are enabled.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

// Apply applies the given color to the text.
func (c *Colorizer) Apply(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + Reset
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.Apply(BoldWhite, text)
}

// Path formats a file path.
func (c *Colorizer) Path(text string) string {
	return c.Apply(Blue, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.Apply(Red, text)
}

// Dim formats secondary/dim text.
func (c *Colorizer) Dim(text string) string {
	return c.Apply(Gray, text)
}

// Number formats numbers/stats.
func (c *Colorizer) Number(text string) string {
	return c.Apply(Yellow, text)
}

// Group formats a data table group key.
func (c *Colorizer) Group(text string) string {
	return c.Apply(Cyan, text)
}

// Selected formats buckets inside the selection.
func (c *Colorizer) Selected(text string) string {
	return c.Apply(Yellow, text)
}
