package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/agency-cli/fakeagent/pkg/config"
	"github.com/agency-cli/fakeagent/pkg/logflags"
)

const historyFile string = ".fakeagent_history"

// Term represents the terminal running the echo session.
type Term struct {
	conf   *config.Config
	prompt string
	line   *liner.State
	dumb   bool
	stdin  *bufio.Reader
	stdout io.Writer
}

// New returns a new Term reading from standard input and writing to
// standard output.
func New(conf *config.Config) *Term {
	if conf == nil {
		conf = &config.Config{}
	}

	dumb := conf.DumbTerminal ||
		strings.ToLower(os.Getenv("TERM")) == "dumb" ||
		!isatty.IsTerminal(os.Stdin.Fd())
	logflags.TerminalLogger().Debugf("dumb terminal: %v", dumb)

	var w io.Writer = os.Stdout
	if !dumb {
		w = getColorableWriter()
	}

	t := &Term{
		conf:   conf,
		prompt: promptMarker,
		dumb:   dumb,
		stdin:  bufio.NewReader(os.Stdin),
		stdout: w,
	}
	if !dumb {
		t.line = liner.NewLiner()
	}
	return t
}

// Close returns the terminal to its previous mode.
func (t *Term) Close() {
	if t.line != nil {
		t.line.Close()
	}
}

func (t *Term) sigintGuard(ch <-chan os.Signal) {
	for range ch {
		// The harness interrupts the agent to end a session, this is not
		// a failure.
		logflags.SessionLogger().Debug("received interrupt, exiting")
		t.Close()
		os.Exit(0)
	}
}

// Run starts the echo session for task. It returns the process exit
// status: end of input ends the session with status 0, an interrupt
// exits the process directly with status 0, and a write failure on
// standard output surfaces as status 1 with an error.
func (t *Term) Run(task string) (int, error) {
	defer t.Close()

	logflags.SessionLogger().Debugf("session started, task: %q", task)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, interruptSignals...)
	go t.sigintGuard(ch)

	if !t.dumb {
		t.loadHistory()
	}

	if _, err := fmt.Fprintf(t.stdout, "%s%s%s\n", agentPrefix, gotTaskBanner, task); err != nil {
		return 1, err
	}
	if _, err := fmt.Fprintf(t.stdout, "%s%s\n", agentPrefix, readyBanner); err != nil {
		return 1, err
	}

	for {
		line, err := t.promptForInput()
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				logflags.SessionLogger().Debug("input closed, exiting")
				return t.handleExit()
			}
			return 1, err
		}

		if _, err := fmt.Fprintln(t.stdout, echoLine(line)); err != nil {
			return 1, err
		}
	}
}

func (t *Term) promptForInput() (string, error) {
	if t.dumb {
		return t.readLineDumb()
	}

	l, err := t.line.Prompt(t.prompt)
	if err != nil {
		return "", err
	}

	l = strings.TrimSuffix(l, "\n")
	if l != "" {
		t.line.AppendHistory(l)
	}
	return l, nil
}

// readLineDumb reads one line without line editing so that the prompt
// and echo bytes on a pipe are exactly what an attached reader expects.
func (t *Term) readLineDumb() (string, error) {
	if _, err := io.WriteString(t.stdout, t.prompt); err != nil {
		return "", err
	}

	l, err := t.stdin.ReadString('\n')
	if err != nil {
		if err == io.EOF && l != "" {
			// Last line of the stream was not newline terminated.
			return l, nil
		}
		return "", err
	}
	return strings.TrimSuffix(l, "\n"), nil
}

func (t *Term) handleExit() (int, error) {
	if !t.dumb {
		t.saveHistory()
	}
	return 0, nil
}

func (t *Term) historyPath() (string, error) {
	name := t.conf.HistoryFile
	if name == "" {
		name = historyFile
	}
	return config.GetConfigFilePath(name)
}

func (t *Term) loadHistory() {
	fullHistoryFile, err := t.historyPath()
	if err != nil {
		logflags.TerminalLogger().WithError(err).Warn("unable to locate history file")
		return
	}

	f, err := os.Open(fullHistoryFile)
	if err != nil {
		return
	}
	t.line.ReadHistory(f)
	f.Close()
}

func (t *Term) saveHistory() {
	fullHistoryFile, err := t.historyPath()
	if err != nil {
		return
	}

	f, err := os.Create(fullHistoryFile)
	if err != nil {
		logflags.TerminalLogger().WithError(err).Warn("history will not be saved for this session")
		return
	}
	t.line.WriteHistory(f)
	f.Close()
}
