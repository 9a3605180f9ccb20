package infra

import "log"

// Logger is the small leveled logging surface the service depends on.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	prefix string
}

// NewStdLogger returns a Logger writing through the standard log package.
// The prefix identifies the component, e.g. "server" or "jobs".
func NewStdLogger(prefix string) Logger { return &stdLogger{prefix: prefix} }

func (l *stdLogger) Infof(format string, v ...interface{}) {
	log.Printf("[INFO] "+l.prefix+": "+format, v...)
}

func (l *stdLogger) Warnf(format string, v ...interface{}) {
	log.Printf("[WARN] "+l.prefix+": "+format, v...)
}

func (l *stdLogger) Errorf(format string, v ...interface{}) {
	log.Printf("[ERROR] "+l.prefix+": "+format, v...)
}
