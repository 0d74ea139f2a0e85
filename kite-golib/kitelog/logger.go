package kitelog

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
)

const flags = log.LstdFlags | log.Lmicroseconds | log.Lshortfile

var (
	// Basic writes to stderr; it is the default for contexts and endpoints.
	Basic = New(os.Stderr, "[esparse] ")
	// Discard drops every message.
	Discard = New(ioutil.Discard, "")
)

// Interface is the subset of *log.Logger that callers log through.
type Interface interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Logger pairs a line logger with the phase timings of the job in progress.
type Logger struct {
	Default *log.Logger
	Phases  Phases
}

// New returns a Logger that writes to w, prefixing each line with prefix.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{Default: log.New(w, prefix, flags)}
}

// Printf implements Interface.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.output(fmt.Sprintf(format, v...))
}

// Println implements Interface.
func (l *Logger) Println(v ...interface{}) {
	l.output(fmt.Sprintln(v...))
}

// output reports the caller of Printf/Println as the source file.
func (l *Logger) output(msg string) {
	l.Default.Output(3, msg)
}
