package reconcile

import "go.uber.org/zap"

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notifier receives fire-and-forget user-facing notices after every
// load and save outcome. Implementations must not block and their
// return is never inspected.
type Notifier interface {
	Notify(message, kind string)
}

// LogNotifier is the default Notifier when no toast layer is wired.
type LogNotifier struct{}

func (LogNotifier) Notify(message, kind string) {
	switch kind {
	case NoticeError:
		zap.L().Error(message)
	default:
		zap.L().Info(message, zap.String("kind", kind))
	}
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}
