package chart

// Area charts are line charts with the region under the line filled.
var areaVariant = variant{
	draw: func(s *Spec) {
		s.Primitive = PrimitiveLine
		s.RenderArea = true
	},
	interactions: func(d Drawable, emit func(Datum)) {
		d.OnClick(SelectorDot, emit)
	},
}
