//go:build linux || darwin || freebsd || netbsd || openbsd || solaris

package terminal

import (
	"os"

	sys "golang.org/x/sys/unix"
)

var interruptSignals = []os.Signal{sys.SIGINT}
