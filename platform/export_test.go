package platform

import (
	"bytes"
	"os"
)

// CatchFatal runs fn, intercepting the fatal path. It returns the diagnostic
// line and exit code if fn hit it, or empty values otherwise.
func CatchFatal(fn func()) (diag string, code int) {
	var buf bytes.Buffer
	prevExit := exitProcess
	exitProcess = func(c int) { code = c }
	logger.SetOutput(&buf)
	defer func() {
		exitProcess = prevExit
		logger.SetOutput(os.Stderr)
		if r := recover(); r != nil {
			if _, ok := r.(fatalError); !ok {
				panic(r)
			}
			diag = buf.String()
		}
	}()
	fn()
	return "", 0
}

// HoldLaunchRequests takes n launch requests out of the pool and returns a
// function giving them back.
func HoldLaunchRequests(n int) (release func(), held int) {
	var reqs []*launchRequest
	for i := 0; i < n; i++ {
		req, ok := launches.TryGet()
		if !ok {
			break
		}
		reqs = append(reqs, req)
	}
	return func() {
		for _, req := range reqs {
			releaseRequest(req)
		}
	}, len(reqs)
}

// LaunchRequestsInUse reports outstanding launch requests.
func LaunchRequestsInUse() int {
	return launches.InUse()
}

const AbortExitCode = abortExitCode
