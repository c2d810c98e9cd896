package cmds

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agency-cli/fakeagent/pkg/config"
	"github.com/agency-cli/fakeagent/pkg/logflags"
	"github.com/agency-cli/fakeagent/pkg/terminal"
	"github.com/agency-cli/fakeagent/pkg/version"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// logDest is the file path or file descriptor where logs should go.
	logDest string

	conf *config.Config
)

// taskEnvVar is the environment variable consulted for the task
// description when none is passed on the command line.
const taskEnvVar = "AGENCY_TASK"

const fakeagentLongDesc = `fakeagent is a stand-in agent used to exercise an attach/detach harness.

It prints the task it was given, then reflects every line typed at it back
as a question until its input closes or it is interrupted. It keeps no
state and speaks no protocol beyond plain lines on standard output.

The task is taken from the first argument when one is given, and from the
` + taskEnvVar + ` environment variable otherwise.`

// New returns an initialized command tree.
func New() *cobra.Command {
	conf = config.LoadConfig()

	rootCommand := &cobra.Command{
		Use:   "fakeagent [task]",
		Short: "fakeagent is a stand-in agent that echoes its input.",
		Long:  fakeagentLongDesc,
		Args:  cobra.MaximumNArgs(1),
		Run:   rootCmd,
	}

	rootCommand.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable diagnostic logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (session,terminal).")
	rootCommand.PersistentFlags().StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file or file descriptor.")

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fakeagent\n%s\n", version.FakeAgentVersion)
		},
	}
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

func rootCmd(cmd *cobra.Command, args []string) {
	if err := logflags.Setup(log, logOutput, logDest); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(session(args))
}

func session(args []string) int {
	defer logflags.Close()

	task := resolveTask(args)
	logflags.SessionLogger().Debugf("resolved task: %q", task)

	status, err := terminal.New(conf).Run(task)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return status
}

// resolveTask returns the task description. A command line argument is
// used verbatim when present, even when empty; otherwise the task comes
// from the environment. Neither set means an empty task.
func resolveTask(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv(taskEnvVar)
}
