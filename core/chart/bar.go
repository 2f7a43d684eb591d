package chart

var barVariant = variant{
	draw: func(s *Spec) {
		s.Primitive = PrimitiveBar
	},
	interactions: func(d Drawable, emit func(Datum)) {
		d.OnClick(SelectorBar, emit)
	},
}
