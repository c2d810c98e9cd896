package terminal

// Line protocol of the echo session. The attach harness scrapes these
// exact strings, do not change them.
const (
	agentPrefix  string = "[agent] "
	promptMarker string = " [user] "

	gotTaskBanner string = "Got task: "
	readyBanner   string = "Ready. Type to echo, Ctrl-Q to detach."
)

// echoLine returns the output written for one line of input: blank input
// produces a blank line, anything else is reflected back as a question.
// The input line has already been stripped of its trailing newline and
// keeps all of its other whitespace.
func echoLine(line string) string {
	if line == "" {
		return ""
	}
	return agentPrefix + line + "?"
}
