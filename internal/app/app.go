// Package app implements the application layer for sherpa.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sherpa/internal/adapters/detector"
	"go.trai.ch/sherpa/internal/adapters/linear"
	"go.trai.ch/sherpa/internal/adapters/tui"
	"go.trai.ch/sherpa/internal/adapters/watcher"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
	"go.trai.ch/sherpa/internal/engine/policy"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	validator    *policy.Validator
	assembler    *policy.Assembler
	emitter      ports.ArtifactEmitter
	logger       ports.Logger
	tracer       ports.Tracer
	fsWatcher    ports.Watcher
	gate         *watcher.ChangeGate

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	debounce   time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	validator *policy.Validator,
	assembler *policy.Assembler,
	emitter ports.ArtifactEmitter,
	log ports.Logger,
	tracer ports.Tracer,
	fsWatcher ports.Watcher,
	gate *watcher.ChangeGate,
) *App {
	return &App{
		configLoader: loader,
		validator:    validator,
		assembler:    assembler,
		emitter:      emitter,
		logger:       log,
		tracer:       tracer,
		fsWatcher:    fsWatcher,
		gate:         gate,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects the app's output streams.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDebounceWindow overrides the watch-mode debounce window.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// Compile runs a single compile pass and prints the outcome. The
// returned error is the pass's rejection, so the command exits non-zero
// exactly when the configuration is invalid or emission failed.
func (a *App) Compile(ctx context.Context) error {
	res := a.compile(ctx, "compile")
	linear.NewRenderer(a.stdout, a.stderr).OnCompileResult(res)
	return res.Err
}

// compile executes one full pass: load, validate, assemble, emit.
// Failures never panic out; they come back on the result so watch mode
// can render them and keep running.
func (a *App) compile(ctx context.Context, trigger string) domain.CompileResult {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "compile")
	defer span.End()
	span.SetAttribute("trigger", trigger)

	fail := func(err error) domain.CompileResult {
		span.RecordError(err)
		return domain.CompileResult{Duration: time.Since(start), Err: err}
	}

	var raw domain.RawOptions
	if err := a.stage(ctx, "load", func(_ context.Context) error {
		var err error
		raw, err = a.configLoader.Load(".")
		return err
	}); err != nil {
		return fail(zerr.Wrap(err, "failed to load configuration"))
	}

	var (
		opts   domain.PluginOptions
		report *domain.ValidationReport
	)
	if err := a.stage(ctx, "validate", func(_ context.Context) error {
		var err error
		opts, report, err = a.validator.Validate(raw)
		return err
	}); err != nil {
		res := fail(err)
		res.Warnings = report.Warnings()
		return res
	}

	var pipeline domain.Pipeline
	if err := a.stage(ctx, "assemble", func(_ context.Context) error {
		var err error
		pipeline, err = a.assembler.Assemble(opts, report)
		return err
	}); err != nil {
		res := fail(err)
		res.Warnings = report.Warnings()
		return res
	}

	rules := domain.BuildCacheRules(opts.Mode(), opts.SheetsOrigin())

	var artifacts []domain.Artifact
	if err := a.stage(ctx, "emit", func(stageCtx context.Context) error {
		var err error
		artifacts, err = a.emitter.Emit(stageCtx, pipeline, opts, raw.OutDirOrDefault())
		return err
	}); err != nil {
		res := fail(zerr.Wrap(err, "failed to emit artifacts"))
		res.Mode = opts.Mode()
		res.Pipeline = pipeline
		res.Warnings = report.Warnings()
		return res
	}

	span.SetAttribute("mode", opts.Mode().String())
	span.SetAttribute("artifacts", len(artifacts))

	return domain.CompileResult{
		Mode:      opts.Mode(),
		Pipeline:  pipeline,
		Rules:     rules,
		Artifacts: artifacts,
		Warnings:  report.Warnings(),
		Duration:  time.Since(start),
	}
}

// stage runs one compile stage under its own span. The telemetry
// bridge turns the span into a timing line when the stage succeeds.
func (a *App) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Check validates the configuration without assembling or emitting.
// Warnings are logged; the returned error aggregates every invalid item.
func (a *App) Check(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "check")
	defer span.End()

	raw, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	_, report, err := a.validator.Validate(raw)
	for _, warning := range report.Warnings() {
		a.logger.Warn(warning)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info(fmt.Sprintf("configuration is valid (%d warning(s))", len(report.Warnings())))
	return nil
}

// Explain evaluates the production cache policy against a request URL
// and reports the rule that would serve it. Rules are checked in
// declaration order, so the first match is the answer.
func (a *App) Explain(ctx context.Context, url string) error {
	_, span := a.tracer.Start(ctx, "explain")
	defer span.End()
	span.SetAttribute("url", url)

	raw, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// The production table is the one that serves traffic, so explain
	// always evaluates it regardless of the local mode.
	rules := domain.BuildCacheRules(domain.ModeProduction, raw.SheetsOriginOrDefault())

	rule, ok := domain.MatchRule(rules, url)
	if !ok {
		a.logger.Info(fmt.Sprintf("no cache rule matches %s; the request passes through to the network", url))
		return nil
	}

	a.logger.Info(fmt.Sprintf("%s matches pattern %s", url, rule.URLPattern))
	a.logger.Info(fmt.Sprintf("served %s via cache %q (max %d entries, max age %ds)",
		rule.Strategy, rule.CacheName, rule.MaxEntries, rule.MaxAgeSeconds))
	return nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	OutputMode string
}

// Watch compiles once, then recompiles whenever watched files change.
// The session ends when the context is canceled or the dashboard quits.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		// The dashboard owns the terminal; diagnostics go to the debug log.
		logFile, err := a.openDebugLog()
		if err != nil {
			return err
		}
		defer a.closeDebugLog(logFile)

		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(tui.NewModel(a.stderr), optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	// Emitting into a custom output dir inside the watched tree must not
	// retrigger the compile that produced it.
	outDir := domain.DefaultOutPath()
	if raw, err := a.configLoader.Load("."); err == nil {
		outDir = raw.OutDirOrDefault()
	}

	if err := a.fsWatcher.Start(ctx, "."); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(gctx)
	defer stopLoop()

	triggers := make(chan string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		changed := a.gate.Changed(paths)
		if len(changed) == 0 {
			return
		}
		select {
		case triggers <- triggerLabel(changed):
		default:
			// A pass is already queued; it will pick this change up too.
		}
	})

	// Renderer routine.
	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		err := renderer.Wait()
		// The dashboard exiting ends the watch session.
		stopLoop()
		return err
	})

	// Compile loop routine.
	g.Go(func() error {
		defer func() {
			_ = a.fsWatcher.Stop()
			_ = renderer.Stop()
		}()
		a.compileLoop(loopCtx, renderer, triggers)
		return nil
	})

	// Event dispatch routine. Ends when Stop closes the event stream.
	g.Go(func() error {
		for event := range a.fsWatcher.Events() {
			if underDir(event.Path, outDir) {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// compileLoop runs the initial pass and then one pass per trigger until
// the context ends.
func (a *App) compileLoop(ctx context.Context, renderer ports.Renderer, triggers <-chan string) {
	pass := func(trigger string) {
		renderer.OnCompileStart(trigger)
		renderer.OnCompileResult(a.compile(ctx, trigger))
	}

	pass("initial")

	for {
		select {
		case <-ctx.Done():
			return
		case trigger := <-triggers:
			pass(trigger)
		}
	}
}

// triggerLabel names a change batch after its first path.
func triggerLabel(changed []string) string {
	label := filepath.Base(changed[0])
	if len(changed) > 1 {
		label = fmt.Sprintf("%s and %d more", label, len(changed)-1)
	}
	return label
}

// underDir reports whether path is dir or lies below it.
func underDir(path, dir string) bool {
	path, dir = filepath.Clean(path), filepath.Clean(dir)
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Artifacts bool
	State     bool
}

// Clean removes build artifacts and internal state based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Artifacts {
		// An unreadable config must not block cleanup; fall back to the
		// default location.
		outDir := domain.DefaultOutPath()
		if raw, err := a.configLoader.Load("."); err == nil {
			outDir = raw.OutDirOrDefault()
		}
		remove(outDir, "build artifacts")
	}

	if options.State {
		remove(domain.DefaultSherpaPath(), "internal state")
	}

	return errs
}

// outputSink is the optional redirection surface of the logger adapter.
type outputSink interface {
	SetOutput(w io.Writer)
}

func (a *App) openDebugLog() (*os.File, error) {
	if err := os.MkdirAll(domain.DefaultSherpaPath(), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create internal directory")
	}

	logFile, err := os.OpenFile(domain.DefaultDebugLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm) // #nosec G304 -- fixed project-relative path
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open debug log")
	}

	if sink, ok := a.logger.(outputSink); ok {
		sink.SetOutput(logFile)
	}
	return logFile, nil
}

func (a *App) closeDebugLog(logFile *os.File) {
	if sink, ok := a.logger.(outputSink); ok {
		sink.SetOutput(nil)
	}
	_ = logFile.Close()
}
