package viewer

type footerModel struct {
	lastError string
}

func (f footerModel) view(width int) string {
	hints := "q quit  ? help  ←/→ move  [/] period  space select  enter events  c chart  s scale"
	if f.lastError != "" {
		hints += "  " + errorStyle.Render("err: "+f.lastError)
	}
	return footerStyle.Width(width).Render(hints)
}
