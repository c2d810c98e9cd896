package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agency-cli/fakeagent/pkg/config"
)

func runSession(t *testing.T, task, input string) string {
	t.Helper()
	var buf bytes.Buffer
	term := &Term{
		conf:   &config.Config{},
		prompt: promptMarker,
		dumb:   true,
		stdin:  bufio.NewReader(strings.NewReader(input)),
		stdout: &buf,
	}
	status, err := term.Run(task)
	if err != nil {
		t.Fatalf("session error: %v", err)
	}
	if status != 0 {
		t.Fatalf("session exit status: got %d, want 0", status)
	}
	return buf.String()
}

const testBanner = "[agent] Got task: the task\n[agent] Ready. Type to echo, Ctrl-Q to detach.\n"

func TestSessionTranscript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		out   string
	}{
		{
			"no input",
			"",
			testBanner + " [user] ",
		},
		{
			"single line",
			"hello\n",
			testBanner + " [user] [agent] hello?\n [user] ",
		},
		{
			"blank line produces blank output and a new prompt",
			"\n",
			testBanner + " [user] \n [user] ",
		},
		{
			"whitespace preserved",
			"  spaced  line  \n",
			testBanner + " [user] [agent]   spaced  line  ?\n [user] ",
		},
		{
			"several lines",
			"one\n\ntwo\n",
			testBanner + " [user] [agent] one?\n [user] \n [user] [agent] two?\n [user] ",
		},
		{
			"last line without newline",
			"hi",
			testBanner + " [user] [agent] hi?\n [user] ",
		},
	}
	for _, test := range tests {
		if got := runSession(t, "the task", test.input); got != test.out {
			t.Errorf("%s:\ngot  %q\nwant %q", test.name, got, test.out)
		}
	}
}

func TestSessionEmptyTask(t *testing.T) {
	got := runSession(t, "", "")
	want := "[agent] Got task: \n[agent] Ready. Type to echo, Ctrl-Q to detach.\n [user] "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stdout gone")
}

func TestSessionWriteFailure(t *testing.T) {
	term := &Term{
		conf:   &config.Config{},
		prompt: promptMarker,
		dumb:   true,
		stdin:  bufio.NewReader(strings.NewReader("hello\n")),
		stdout: failingWriter{},
	}
	status, err := term.Run("the task")
	if err == nil {
		t.Fatal("expected an error from an unwritable stdout")
	}
	if status != 1 {
		t.Errorf("exit status: got %d, want 1", status)
	}
}
