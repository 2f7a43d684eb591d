package chart

var lineVariant = variant{
	draw: func(s *Spec) {
		s.Primitive = PrimitiveLine
		s.RenderArea = false
	},
	interactions: func(d Drawable, emit func(Datum)) {
		d.OnClick(SelectorDot, emit)
	},
}
