package chart

// Kind is the chart variant selected by the displayChartType option.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindArea Kind = "area"
)

// KindOf maps an option value to a Kind. Unrecognised values yield KindBar.
func KindOf(s string) Kind {
	switch Kind(s) {
	case KindLine:
		return KindLine
	case KindArea:
		return KindArea
	default:
		return KindBar
	}
}

// variant holds the only two behaviours that differ between kinds.
type variant struct {
	// draw selects the engine geometry.
	draw func(*Spec)

	// interactions wires clicks on drawn elements to emit.
	interactions func(d Drawable, emit func(Datum))
}

var variants = map[Kind]variant{
	KindBar:  barVariant,
	KindLine: lineVariant,
	KindArea: areaVariant,
}
