package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В release режиме gin пишем JSON с уровнем Info,
// в остальных окружениях - текстовый формат с уровнем Debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(new(logrus.TextFormatter))
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

// Component возвращает entry с проставленным полем component для подсистем
// (http, payout, storage).
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
