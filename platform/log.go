// File: platform/log.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"io"
	"log"
	"os"
)

// abortExitCode is the status a shell reports for a process killed by SIGABRT.
const abortExitCode = 134

var (
	logger = log.New(os.Stderr, "[platform] ", log.LstdFlags|log.Lmicroseconds)

	// exitProcess terminates the process after a fatal diagnostic.
	exitProcess = os.Exit
)

// Logger returns the diagnostic logger of the package.
func Logger() *log.Logger {
	return logger
}

// SetDiagnosticOutput redirects the diagnostic stream (stderr by default).
func SetDiagnosticOutput(w io.Writer) {
	logger.SetOutput(w)
}

// fatalError is what fatal panics with if exitProcess returns.
type fatalError struct {
	op  string
	err error
}

func (e fatalError) Error() string {
	return e.op + " failed: " + e.err.Error()
}

// fatal reports a failed primitive and terminates the process. It never
// returns.
func fatal(op string, err error) {
	fe := fatalError{op: op, err: err}
	logger.Print(fe.Error())
	exitProcess(abortExitCode)
	panic(fe)
}
