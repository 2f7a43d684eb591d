package viewer

import (
	"github.com/safedep/timelineviewer/core/timeline"
	"github.com/safedep/timelineviewer/render/terminal"
)

// Options wires a viewer to a timeline. Engine must be the chart engine the
// timeline was created with, and its table engine if a data table exists.
type Options struct {
	Timeline *timeline.Timeline
	Engine   *terminal.Engine
	Title    string
}
