package execution

import (
	"github.com/jensneuse/abstractlogger"
	"go.uber.org/zap"
)

// NewZapLogger adapts a *zap.Logger into the abstractlogger.Logger Config
// expects, for callers who want field errors (addFieldError in complete.go)
// routed into their existing zap pipeline rather than discarded by the
// default abstractlogger.Noop{}.
func NewZapLogger(l *zap.Logger, level abstractlogger.Level) abstractlogger.Logger {
	return abstractlogger.NewZapLogger(l, level)
}
