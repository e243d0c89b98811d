package generation

import (
	"io/fs"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/barrelgen/internal/barrel"
	"git.home.luguber.info/inful/barrelgen/internal/metrics"
)

type recordingLogger struct {
	logs, warns, errs, dones []string
}

func (r *recordingLogger) Log(msg string)   { r.logs = append(r.logs, msg) }
func (r *recordingLogger) Warn(msg string)  { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Error(msg string) { r.errs = append(r.errs, msg) }
func (r *recordingLogger) Done(msg string)  { r.dones = append(r.dones, msg) }

// recordingFS records writes and fails those whose path contains failOn.
type recordingFS struct {
	barrel.OSFileSystem
	mu     sync.Mutex
	writes []string
	failOn string
}

func (r *recordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	r.mu.Lock()
	r.writes = append(r.writes, barrel.ToPosixPath(name))
	r.mu.Unlock()
	if r.failOn != "" && strings.Contains(barrel.ToPosixPath(name), r.failOn) {
		return fs.ErrPermission
	}
	return r.OSFileSystem.WriteFile(name, data, perm)
}

type countingRecorder struct {
	durations     map[string]int
	outcomes      map[metrics.OutcomeLabel]int
	barrelResults map[metrics.ResultLabel]int
	exports       []int
	childFailures int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		durations:     map[string]int{},
		outcomes:      map[metrics.OutcomeLabel]int{},
		barrelResults: map[metrics.ResultLabel]int{},
	}
}

func (c *countingRecorder) ObserveGenerationDuration(strategy string, _ time.Duration) {
	c.durations[strategy]++
}
func (c *countingRecorder) IncRunOutcome(o metrics.OutcomeLabel)  { c.outcomes[o]++ }
func (c *countingRecorder) IncBarrelResult(r metrics.ResultLabel) { c.barrelResults[r]++ }
func (c *countingRecorder) ObserveExportCount(n int)              { c.exports = append(c.exports, n) }
func (c *countingRecorder) IncChildFailure()                      { c.childFailures++ }
