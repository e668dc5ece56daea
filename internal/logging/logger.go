package logging

import (
	"io"
	"os"

	"github.com/agux/uagen/internal/conf"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Logger the global logger for this project
var Logger = logrus.New()

const (
	//DateFormat is project-standard date format.
	DateFormat = "2006-01-02"
	//TimeFormat is project-standard time format.
	TimeFormat = "15:04:05"
	//DateTimeFormat is project-standard datetime format.
	DateTimeFormat = "2006-01-02 15:04:05"
)

func init() {
	Logger.SetLevel(levelOf(conf.Args.Logging.LogLevel))
	Logger.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: DateTimeFormat,
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	Logger.SetOutput(openOutput(conf.Args.Logging.LogFilePath))
}

// levelOf maps a configured level name to a logrus level, falling back to warning.
func levelOf(name string) logrus.Level {
	switch name {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warning", "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	}
	return logrus.WarnLevel
}

// openOutput returns the log sink. Stdout belongs to the interactive shell,
// so logs go to stderr unless a log file is configured.
func openOutput(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	if _, e := os.Stat(path); e == nil {
		os.Remove(path)
	}
	logFile, e := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0666)
	if e != nil {
		Logger.SetOutput(os.Stderr)
		Logger.Errorf("failed to open log file %s, logging to stderr: %+v", path, e)
		return os.Stderr
	}
	logrus.RegisterExitHandler(func() {
		logFile.Close()
	})
	return logFile
}
