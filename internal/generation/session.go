package generation

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/barrelgen/internal/barrel"
	"git.home.luguber.info/inful/barrelgen/internal/config"
	"git.home.luguber.info/inful/barrelgen/internal/foundation"
	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
	"git.home.luguber.info/inful/barrelgen/internal/logfields"
	"git.home.luguber.info/inful/barrelgen/internal/metrics"
)

const barrelFileMode = 0o644

// Phase is the session lifecycle position.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseValidating
	PhaseGenerating
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseValidating:
		return "validating"
	case PhaseGenerating:
		return "generating"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// StartParams identifies the generation target.
type StartParams struct {
	// FSPath is the host-native absolute path of the target directory.
	FSPath string
	// Path is the POSIX form of FSPath; derived when empty.
	Path string
	Type Strategy
}

type runState struct {
	fsPath    string
	path      string
	strategy  Strategy
	startedAt time.Time
	runID     string
}

// Session owns one generation run. It is not safe for concurrent use.
type Session struct {
	cfg    config.Config
	logger Logger
	opts   Options
	state  foundation.Option[runState]
	phase  Phase
}

// New creates an uninitialized session. A nil logger discards the narrative.
func New(cfg config.Config, logger Logger, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Session{
		cfg:    cfg,
		logger: logger,
		opts:   o,
		state:  foundation.None[runState](),
		phase:  PhaseUninitialized,
	}
}

// Start validates the target and generates barrels according to params.Type.
// The Ok value is the target's barrel path, or "" when skipEmpty suppressed it.
// Calling Start again replaces the previous run state.
func (s *Session) Start(params StartParams) foundation.Result[string, error] {
	startedAt := s.opts.Now()
	if params.Path == "" {
		params.Path = barrel.ToPosixPath(params.FSPath)
	}
	st := runState{
		fsPath:    params.FSPath,
		path:      params.Path,
		strategy:  params.Type,
		startedAt: startedAt,
		runID:     s.opts.NewRunID(),
	}
	s.state = foundation.Some(st)
	s.phase = PhaseValidating

	started := "Generation started"
	if s.opts.LogTimestamps {
		started += " " + barrel.FormatDate(startedAt)
	}
	s.logger.Log(s.stamp(started))
	s.logger.Log(s.stamp(fmt.Sprintf("Type: %s - Path: %s", params.Type.Label(), params.FSPath)))

	diag := s.opts.Diagnostics.With(logfields.RunID(st.runID), logfields.Strategy(params.Type.Label()))
	result := s.run(params.Type, barrel.ToPosixPath(params.FSPath), diag)

	elapsed := s.opts.Now().Sub(startedAt)
	s.opts.Recorder.ObserveGenerationDuration(params.Type.Label(), elapsed)
	if result.IsOk() {
		s.phase = PhaseDone
		s.opts.Recorder.IncRunOutcome(metrics.OutcomeSuccess)
		diag.Debug("Generation complete", logfields.Path(result.Unwrap()), logfields.DurationMS(float64(elapsed.Milliseconds())))
	} else {
		s.phase = PhaseFailed
		s.opts.Recorder.IncRunOutcome(metrics.OutcomeFailed)
		diag.Debug("Generation failed", logfields.Error(result.UnwrapErr()))
	}
	return result
}

func (s *Session) run(strategy Strategy, target string, diag *slog.Logger) foundation.Result[string, error] {
	if !strategy.Valid() {
		return foundation.Err[string, error](unknownStrategy(string(strategy), nil))
	}

	policy, err := barrel.NewPolicy(s.cfg, s.opts.FS)
	if err != nil {
		return foundation.Err[string, error](err)
	}

	if err := s.validateTarget(target); err != nil {
		return foundation.Err[string, error](err)
	}
	s.phase = PhaseGenerating

	p := &pass{session: s, policy: policy, strategy: strategy, diag: diag}
	out := p.generate(target)
	switch out.Kind() {
	case OutcomeWritten:
		return foundation.Ok[string, error](out.Path())
	case OutcomeEmpty:
		return foundation.Ok[string, error]("")
	default:
		return foundation.Err[string, error](out.Err())
	}
}

func (s *Session) validateTarget(target string) error {
	info, err := s.opts.FS.Lstat(barrel.ToOSPath(target))
	if err == nil && info.IsDir() {
		return nil
	}
	cause := barrel.ErrNotADirectory
	if err != nil {
		cause = fmt.Errorf("%w: %w", barrel.ErrNotADirectory, err)
	}
	return errors.WrapError(cause, errors.CategoryValidation, "Select a folder from the workspace").
		Fatal().
		WithContext("path", target).
		Build()
}

// FSPath returns the host path of the current run.
func (s *Session) FSPath() foundation.Result[string, error] {
	return s.field("fsPath", func(st runState) string { return st.fsPath })
}

// Path returns the POSIX path of the current run.
func (s *Session) Path() foundation.Result[string, error] {
	return s.field("path", func(st runState) string { return st.path })
}

// Strategy returns the strategy of the current run.
func (s *Session) Strategy() foundation.Result[Strategy, error] {
	return foundation.Map(s.field("type", func(st runState) string { return string(st.strategy) }),
		func(v string) Strategy { return Strategy(v) })
}

// Phase reports where the session is in its lifecycle.
func (s *Session) Phase() Phase { return s.phase }

func (s *Session) field(name string, get func(runState) string) foundation.Result[string, error] {
	uninitialized := errors.StateError(fmt.Sprintf("cannot access %s before the session is started", name)).
		WithCause(ErrUninitialized).
		Build()
	return foundation.Map(foundation.OkOr[runState, error](s.state, uninitialized), get)
}

// OnError reports a failure message. Session state is unchanged.
func (s *Session) OnError(message string) {
	s.logger.Log(s.stamp("An error occurred:"))
	s.logger.Error(message)
}

// EndGeneration emits the completion line. It may be called after success or failure.
func (s *Session) EndGeneration() {
	s.logger.Done(s.stamp("Generation finished"))
}

func (s *Session) stamp(msg string) string {
	if !s.opts.LogTimestamps {
		return msg
	}
	return "[" + barrel.FormatDate(s.opts.Now()) + "] " + msg
}
