package logging

import (
	"bytes"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

const (
	//MsgFormatSingle use info
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti use show all func call relation
	MsgFormatMulti
)

const (
	defaultPath     = "/tmp"
	defaultFilename = "tmp-masssum"
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

type Logger struct {
	*logrus.Logger
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

// callRelation returns how many callers are recorded for an entry of level:
// the full call chain for error and worse, only the caller otherwise.
func callRelation(level logrus.Level) uint32 {
	if level <= logrus.ErrorLevel {
		return MsgFormatMulti
	}
	return MsgFormatSingle
}

var (
	initMu sync.Mutex
	// clog prints to stdout and file, vlog only to file.
	clog *Logger
	vlog *Logger
)

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch level {
	case PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel:
		return true
	}
	return false
}

// Init loggers
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	initMu.Lock()
	defer initMu.Unlock()
	initLocked(path, filename, level, age, disableCPrint)
}

func initLocked(path, filename string, level string, age uint32, disableCPrint bool) {
	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	vlog = newFileLogger(fileHooker, level)
	vlog.Out = &emptyWriter{}

	if !disableCPrint {
		clog = newFileLogger(fileHooker, level)
		clog.Out = os.Stdout
	} else {
		clog = vlog
	}

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

func newFileLogger(fileHooker logrus.Hook, level string) *Logger {
	l := NewLogger()
	LoadFunctionHooker(l)
	l.Hooks.Add(fileHooker)
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(level)
	return l
}

// current returns the console and file loggers, initializing them with
// defaults on first use.
func current() (*Logger, *Logger) {
	initMu.Lock()
	defer initMu.Unlock()
	if clog == nil || vlog == nil {
		initLocked(defaultPath, defaultFilename, InfoLevel, 0, false)
	}
	return clog, vlog
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stdout + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := current()
	logAt(c, level, msg, formats...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := current()
	logAt(v, level, msg, formats...)
}

func logAt(l *Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
