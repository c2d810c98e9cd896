//go:build windows

package terminal

import "os"

var interruptSignals = []os.Signal{os.Interrupt}
