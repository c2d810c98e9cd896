package logflags

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func resetState() {
	session = false
	terminal = false
	logOut = nil
	loggerFactory = nil
}

func TestSetupLogOutputWithoutLog(t *testing.T) {
	defer resetState()
	err := Setup(false, "session", "")
	if err != errLogstrWithoutLog {
		t.Fatalf("expected errLogstrWithoutLog; but was <%v>", err)
	}
}

func TestSetupComponents(t *testing.T) {
	tests := []struct {
		name              string
		logstr            string
		session, terminal bool
	}{
		{"default component", "", true, false},
		{"terminal only", "terminal", false, true},
		{"both components", "session,terminal", true, true},
		{"unknown component ignored", "bogus", false, false},
	}
	for _, test := range tests {
		resetState()
		if err := Setup(true, test.logstr, ""); err != nil {
			t.Fatalf("%s: unexpected error <%v>", test.name, err)
		}
		if Session() != test.session || Terminal() != test.terminal {
			t.Errorf("%s: got session=%v terminal=%v; want session=%v terminal=%v",
				test.name, Session(), Terminal(), test.session, test.terminal)
		}
	}
	resetState()
}

func TestMakeLoggerUsingLoggerFactory(t *testing.T) {
	defer resetState()
	logOut = &bufferWriter{}

	expectedLogger := &logrusLogger{}
	SetLoggerFactory(func(flag bool, fields Fields, out io.Writer) Logger {
		if !flag {
			t.Fatalf("expected flag to be true; but was <%v>", flag)
		}
		if len(fields) != 1 || fields["layer"] != "session" {
			t.Fatalf("expected fields to be {'layer':'session'}; but was <%v>", fields)
		}
		if out != logOut {
			t.Fatalf("expected out to be <%v>; but was <%v>", logOut, out)
		}
		return expectedLogger
	})

	actual := makeLogger(true, Fields{"layer": "session"})
	if actual != expectedLogger {
		t.Fatalf("expected actual to be <%v>; but was <%v>", expectedLogger, actual)
	}
}

func TestMakeLoggerWithFlagFalse(t *testing.T) {
	defer resetState()
	actual := makeLogger(false, Fields{"layer": "session"})
	actualEntry, ok := actual.(*logrusLogger)
	if !ok {
		t.Fatalf("expected actual to be a *logrusLogger; but was <%T>", actual)
	}
	if actualEntry.Entry.Logger.Level != logrus.PanicLevel {
		t.Fatalf("expected level to be <%v>; but was <%v>", logrus.PanicLevel, actualEntry.Entry.Logger.Level)
	}
}

func TestMakeLoggerWithFlagTrue(t *testing.T) {
	defer resetState()
	logOut = &bufferWriter{}
	actual := makeLogger(true, Fields{"layer": "terminal"})
	actualEntry, ok := actual.(*logrusLogger)
	if !ok {
		t.Fatalf("expected actual to be a *logrusLogger; but was <%T>", actual)
	}
	if actualEntry.Entry.Logger.Level != logrus.DebugLevel {
		t.Fatalf("expected level to be <%v>; but was <%v>", logrus.DebugLevel, actualEntry.Entry.Logger.Level)
	}
	if actualEntry.Entry.Logger.Out != logOut {
		t.Fatalf("expected out to be <%v>; but was <%v>", logOut, actualEntry.Entry.Logger.Out)
	}
}

type bufferWriter struct {
	bytes.Buffer
}

func (bw *bufferWriter) Close() error {
	return nil
}
