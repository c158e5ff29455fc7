package chull

import (
	"io"

	"github.com/osuushi/meshtools/render"
	"go.uber.org/zap"
)

// This is for debugging purposes only

// Draw the mesh after every insertion cycle, save it to path, and write it to
// out as an inline image (iTerm only).
func WithDebugDraw(path string, out io.Writer) Option {
	return func(h *Hull) {
		h.drawPath = path
		h.drawOut = out
	}
}

// Works mid-construction too, since it only reads the arenas.
func (h *Hull) dbgDraw() {
	if h.drawPath == "" {
		return
	}
	c := render.Wireframe(h.Vertices(), h.Edges(), render.DefaultOptions())
	if err := render.Show(c, h.drawPath, h.drawOut); err != nil {
		h.logger.Warn("could not draw hull", zap.Error(err))
	}
}
