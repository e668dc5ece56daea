package shell

import (
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/ssgreg/repeat"
)

// SaveAgents writes agents to path, one per line, replacing any existing file.
// Transient write errors are retried up to maxRetry attempts in total.
func SaveAgents(path string, agents []string, maxRetry int) error {
	if maxRetry < 1 {
		maxRetry = 1
	}
	var last error
	op := func(c int) error {
		if last = writeAgents(path, agents); last == nil {
			return nil
		}
		if transient(last) {
			log.Warnf("#%d failed to write %s, retrying: %+v", c+1, path, last)
			return repeat.HintTemporary(last)
		}
		return repeat.HintStop(last)
	}
	e := try(op, maxRetry, 2*time.Second)
	if last != nil {
		// last attempt failed; report its error rather than the retry wrapper
		e = last
	}
	if e != nil {
		return errors.Wrapf(e, "failed to save %d user agents to %s", len(agents), path)
	}
	return nil
}

func writeAgents(path string, agents []string) (e error) {
	f, e := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if e != nil {
		return
	}
	defer func() {
		if ce := f.Close(); ce != nil && e == nil {
			e = ce
		}
	}()
	_, e = io.WriteString(f, strings.Join(agents, "\n"))
	return
}

func transient(e error) bool {
	return errors.Is(e, syscall.EINTR) ||
		errors.Is(e, syscall.EAGAIN) ||
		errors.Is(e, syscall.EBUSY)
}

func try(op func(int) error, maxRetry int, maxDelay time.Duration) error {
	return repeat.Repeat(
		repeat.FnWithCounter(op),
		repeat.StopOnSuccess(),
		repeat.LimitMaxTries(maxRetry),
		repeat.WithDelay(
			repeat.FullJitterBackoff(500*time.Millisecond).WithMaxDelay(maxDelay).Set(),
		),
	)
}
