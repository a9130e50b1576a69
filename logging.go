package chemgine

import "github.com/sirupsen/logrus"

// logger is package-scoped rather than the global logrus default, so
// embedding applications can redirect it without a global
// log.SetOutput side effect (see inmaputil's equivalent pattern).
var logger = logrus.New()

// SetLogger lets a host application supply its own logrus instance,
// e.g. to attach structured fields or a different output sink.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

func log() *logrus.Entry {
	return logger.WithField("component", "chemgine")
}
