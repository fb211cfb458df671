package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const maxStackDepth = 32

// Frame is a resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (frame Frame) file() string {
	if len(frame.File) == 0 {
		return "unknownFile"
	}
	return frame.File
}

func (frame Frame) name() string {
	if len(frame.Function) == 0 {
		return "unknownFunc"
	}
	return frame.Function
}

// Format characters:
// %s - source file base name
// %d - source line
// %n - function name without package path
// %v - equivalent to %s:%d
// %+v - <function-name>\n\t<full path>:<line>
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		_, _ = io.WriteString(s, path.Base(frame.file()))
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.Line))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
		_, _ = io.WriteString(s, ":")
		_, _ = io.WriteString(s, strconv.Itoa(frame.Line))
	}
}

func (frame Frame) String() string {
	return frame.name() + " " + frame.file() + ":" + strconv.Itoa(frame.Line)
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

type frames []Frame

func (fs frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		enc.AppendString(f.String())
	}
	return nil
}

// callers skips runtime.Callers itself at 0 and callers at 1.
func callers(skip int) frames {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return nil
	}
	it := runtime.CallersFrames(pcs[:n])
	fs := make(frames, 0, n)
	for {
		f, more := it.Next()
		fs = append(fs, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return fs
}

// ErrorStack is an error carrying the call frames where it was created or
// wrapped. It can be inlined into zap log entries by zap.Inline.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Frames() []Frame
	Unwrap() error
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	err    error
	msg    string
	frames frames
}

func (es *errorStack) Error() string {
	if es.err == nil {
		return es.msg
	}
	if len(es.msg) == 0 {
		return es.err.Error()
	}
	return es.msg + ": " + es.err.Error()
}

func (es *errorStack) Unwrap() error {
	return es.err
}

func (es *errorStack) Frames() []Frame {
	return es.frames
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	return enc.AddArray("errorStack", es.frames)
}

// Format supports %s, %q, %v and %+v. The last one prints the frames too.
func (es *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, es.Error())
		if s.Flag('+') {
			for _, f := range es.frames {
				_, _ = io.WriteString(s, "\n")
				f.Format(s, verb)
			}
		}
	case 's':
		_, _ = io.WriteString(s, es.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", es.Error())
	}
}

func NewErrorStack(msg string) error {
	return &errorStack{
		msg:    msg,
		frames: callers(3),
	}
}

func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		err:    err,
		frames: callers(3),
	}
}

func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		err:    err,
		msg:    msg,
		frames: callers(3),
	}
}

// IsErrorStack reports whether any error in err's chain carries frames.
func IsErrorStack(err error) bool {
	var es ErrorStack
	return errors.As(err, &es)
}
