package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards layout lifecycle events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnLayoutStart(workspace, layout string, clients int) {
	h.logger.Debug("layout start", "workspace", workspace, "layout", layout, "clients", clients)
}

func (h logHooks) OnLayoutComplete(workspace, layout string, placed int, duration time.Duration) {
	h.logger.Debug("layout complete", "workspace", workspace, "layout", layout, "placed", placed, "duration", duration)
}

func (h logHooks) OnLayoutReplaced(workspace, previous, next string) {
	h.logger.Debug("layout replaced", "workspace", workspace, "previous", previous, "next", next)
}

func (h logHooks) OnMessage(workspace, layout, kind string) {
	h.logger.Debug("message", "workspace", workspace, "layout", layout, "kind", kind)
}
