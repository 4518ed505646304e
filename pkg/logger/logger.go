package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New 는 stderr 로 쓰는 로거. prefix 는 컴포넌트 이름 (예: "codec").
func New(prefix string, debug bool) Logger {
	return NewWithWriter(os.Stderr, prefix, debug)
}

func NewWithWriter(w io.Writer, prefix string, debug bool) Logger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &stdLogger{l: log.New(w, prefix, log.LstdFlags|log.Lmsgprefix), debug: debug}
}

// NewNop 은 아무것도 출력하지 않는다 (테스트용).
func NewNop() Logger { return &stdLogger{l: log.New(io.Discard, "", 0)} }

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}
func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
