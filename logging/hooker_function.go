package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	maxCallerFrames = 3
	packagePath     = "massnet.org/masssum/logging."
)

// wrappers are the functions of this package between a caller and logrus.
var wrappers = []string{
	packagePath + "CPrint",
	packagePath + "VPrint",
	packagePath + "logAt",
	packagePath + "callers",
	packagePath + "(*functionHooker)",
}

type functionHooker struct{}

func skipFrame(fname string) bool {
	if strings.HasPrefix(fname, "github.com/sirupsen/logrus") {
		return true
	}
	for _, w := range wrappers {
		if strings.HasPrefix(fname, w) {
			return true
		}
	}
	return false
}

// callers returns up to n frames above the logging call, skipping logrus
// and the logging wrappers.
func callers(n int) []runtime.Frame {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(2, pcs)]
	frames := runtime.CallersFrames(pcs)

	var out []runtime.Frame
	for len(out) < n {
		f, more := frames.Next()
		if !skipFrame(f.Function) {
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

func shortFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	fs := callers(1)
	if len(fs) == 0 {
		return
	}
	entry.Data["func"] = shortFuncName(fs[0].Function)
	entry.Data["line"] = fs[0].Line
	entry.Data["file"] = filepath.Base(fs[0].File)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i, f := range callers(maxCallerFrames) {
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(f.File), shortFuncName(f.Function), f.Line)
	}
}

// Fire only touches entry, which belongs to one logging call.
func (h *functionHooker) Fire(entry *logrus.Entry) error {
	switch callRelation(entry.Level) {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{})
}
