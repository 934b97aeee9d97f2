// Package runnertest provides a Runner that records calls instead of
// spawning processes.
package runnertest

import (
	"strings"
	"sync"

	"nix-config/internal/runner"
)

// Reply is a canned answer for commands matching a prefix.
type Reply struct {
	Prefix   string
	ExitCode int
	Stderr   string
	Err      error // returned as a start failure
}

// Recorder is a runner.Runner that remembers every command line in order and
// answers from a list of canned replies. Commands without a matching reply
// succeed.
type Recorder struct {
	mu      sync.Mutex
	calls   []string
	replies []Reply
}

// New creates a Recorder with the given replies.
func New(replies ...Reply) *Recorder {
	return &Recorder{replies: replies}
}

// On registers a reply for command lines starting with prefix.
// Later registrations take precedence over earlier ones.
func (r *Recorder) On(prefix string, exitCode int, stderr string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, Reply{Prefix: prefix, ExitCode: exitCode, Stderr: stderr})
	return r
}

// Fail registers a start failure for command lines starting with prefix.
func (r *Recorder) Fail(prefix string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, Reply{Prefix: prefix, Err: err})
	return r
}

// Run implements runner.Runner.
func (r *Recorder) Run(program string, args ...string) (runner.Result, error) {
	res := runner.Result{Program: program, Args: args}
	line := res.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, line)

	for i := len(r.replies) - 1; i >= 0; i-- {
		reply := r.replies[i]
		if !strings.HasPrefix(line, reply.Prefix) {
			continue
		}
		if reply.Err != nil {
			return res, reply.Err
		}
		res.ExitCode = reply.ExitCode
		res.Stderr = reply.Stderr
		return res, nil
	}
	return res, nil
}

// Calls returns the recorded command lines in invocation order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// CallsWithPrefix returns the recorded command lines starting with prefix.
func (r *Recorder) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Index returns the position of the first call starting with prefix, or -1.
func (r *Recorder) Index(prefix string) int {
	for i, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// Reset forgets recorded calls but keeps the replies.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
