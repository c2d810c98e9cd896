package logflags

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var session = false
var terminal = false

var logOut io.WriteCloser

func makeLogger(flag bool, fields Fields) Logger {
	lf := loggerFactory
	if lf == nil {
		lf = newLogrusLogger
	}
	return lf(flag, fields, logOut)
}

func newLogrusLogger(flag bool, fields Fields, out io.Writer) Logger {
	logger := logrus.New().WithFields(logrus.Fields(fields))
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	if out != nil {
		logger.Logger.Out = out
	}
	return &logrusLogger{logger}
}

// Session returns true if the session lifecycle should be logged.
func Session() bool {
	return session
}

// SessionLogger returns a logger for the echo session lifecycle.
func SessionLogger() Logger {
	return makeLogger(session, Fields{"layer": "session"})
}

// Terminal returns true if terminal handling should be logged.
func Terminal() bool {
	return terminal
}

// TerminalLogger returns a logger for terminal handling.
func TerminalLogger() Logger {
	return makeLogger(terminal, Fields{"layer": "terminal"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the component flags based on the contents of logstr and, if
// logDest is nonempty, routes log output to the file or file descriptor
// it names.
func Setup(logFlag bool, logstr, logDest string) error {
	if logDest != "" {
		n, err := strconv.Atoi(logDest)
		if err == nil {
			logOut = os.NewFile(uintptr(n), "fakeagent-log")
		} else {
			fh, err := os.Create(logDest)
			if err != nil {
				return fmt.Errorf("could not create log file: %v", err)
			}
			logOut = fh
		}
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "session"
	}
	v := strings.Split(logstr, ",")
	for _, logcmd := range v {
		switch logcmd {
		case "session":
			session = true
		case "terminal":
			terminal = true
		}
	}
	return nil
}

// Close closes the file or file descriptor passed to Setup as logDest.
func Close() {
	if logOut != nil {
		logOut.Close()
	}
}
