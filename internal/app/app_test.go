package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sherpa/internal/adapters/telemetry"
	"go.trai.ch/sherpa/internal/adapters/watcher"
	"go.trai.ch/sherpa/internal/app"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
	"go.trai.ch/sherpa/internal/core/ports/mocks"
	"go.trai.ch/sherpa/internal/engine/policy"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type testHarness struct {
	loader  *mocks.MockConfigLoader
	probe   *mocks.MockCapabilityProbe
	emitter *mocks.MockArtifactEmitter
	logger  *mocks.MockLogger
	watcher *mocks.MockWatcher
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	app     *app.App
}

func newHarness(ctrl *gomock.Controller) *testHarness {
	h := &testHarness{
		loader:  mocks.NewMockConfigLoader(ctrl),
		probe:   mocks.NewMockCapabilityProbe(ctrl),
		emitter: mocks.NewMockArtifactEmitter(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
	}
	h.app = app.New(
		h.loader,
		policy.NewValidator(h.probe),
		policy.NewAssembler(),
		h.emitter,
		h.logger,
		telemetry.NewNoOpTracer(),
		h.watcher,
		watcher.NewChangeGate(),
	).WithOutput(&h.stdout, &h.stderr)
	return h
}

// eventSeq adapts a channel to the watcher port's event iterator. The
// declared return type matters: the mock hands it back via a type
// assertion.
func eventSeq(events <-chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

// expectResolvableDefaults arranges the probe so the default plugin set
// validates cleanly, times over.
func (h *testHarness) expectResolvableDefaults(times int) {
	h.probe.EXPECT().ResolvePackage(domain.DefaultCompilerPlugin).Return(nil).Times(times)
	h.probe.EXPECT().ResolvePackage(domain.DefaultPWAPlugin).Return(nil).Times(times)
	h.probe.EXPECT().ResolveAsset(domain.DefaultWebManifestPath()).Return(nil).Times(times)
}

func TestApp_Compile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.expectResolvableDefaults(1)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.emitter.EXPECT().
		Emit(gomock.Any(), gomock.Any(), gomock.Any(), domain.DefaultOutPath()).
		Return([]domain.Artifact{{Path: "dist/pipeline.json", Size: 412}}, nil)

	if err := h.app.Compile(context.Background()); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if got := h.stdout.String(); !strings.Contains(got, "dist/pipeline.json (412 B)") {
		t.Errorf("stdout missing artifact line: %q", got)
	}
	if got := h.stderr.String(); !strings.Contains(got, "Compiled 1 artifact(s)") {
		t.Errorf("stderr missing summary: %q", got)
	}
}

func TestApp_Compile_ConfiguredOutDir(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.expectResolvableDefaults(1)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{OutDir: "build-out"}, nil)
	h.emitter.EXPECT().
		Emit(gomock.Any(), gomock.Any(), gomock.Any(), "build-out").
		Return([]domain.Artifact{{Path: "build-out/pipeline.json", Size: 412}}, nil)

	if err := h.app.Compile(context.Background()); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
}

func TestApp_Compile_ConfigInvalid(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.probe.EXPECT().ResolvePackage(domain.DefaultCompilerPlugin).Return(domain.ErrPackageNotInstalled)
	h.probe.EXPECT().ResolvePackage(domain.DefaultPWAPlugin).Return(nil)
	h.probe.EXPECT().ResolveAsset(domain.DefaultWebManifestPath()).Return(nil)

	err := h.app.Compile(context.Background())
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("Compile() error = %v, want ErrConfigInvalid", err)
	}

	if got := h.stderr.String(); !strings.Contains(got, "Compile failed") {
		t.Errorf("stderr missing failure line: %q", got)
	}
	if h.stdout.Len() != 0 {
		t.Errorf("expected empty stdout, got: %q", h.stdout.String())
	}
}

func TestApp_Compile_LoadError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, zerr.New("yaml exploded"))

	err := h.app.Compile(context.Background())
	if err == nil {
		t.Fatal("Compile() error = nil, want load failure")
	}
	if !strings.Contains(err.Error(), "failed to load configuration") {
		t.Errorf("error = %v, want load context", err)
	}
}

func TestApp_Compile_EmitError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.expectResolvableDefaults(1)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.emitter.EXPECT().
		Emit(gomock.Any(), gomock.Any(), gomock.Any(), domain.DefaultOutPath()).
		Return(nil, zerr.New("disk full"))

	err := h.app.Compile(context.Background())
	if err == nil {
		t.Fatal("Compile() error = nil, want emit failure")
	}
	if !strings.Contains(err.Error(), "failed to emit artifacts") {
		t.Errorf("error = %v, want emit context", err)
	}
}

func TestApp_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.probe.EXPECT().ResolvePackage(domain.DefaultCompilerPlugin).Return(nil)
	h.probe.EXPECT().ResolvePackage(domain.DefaultPWAPlugin).Return(nil)
	// A missing manifest degrades to a warning, not an error.
	h.probe.EXPECT().ResolveAsset(domain.DefaultWebManifestPath()).Return(domain.ErrAssetNotFound)

	var warnings []string
	h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warnings = append(warnings, msg)
	})
	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		if !strings.Contains(msg, "configuration is valid") {
			t.Errorf("Info() = %q, want validity confirmation", msg)
		}
	})

	if err := h.app.Check(context.Background()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "web manifest") {
		t.Errorf("warnings = %v, want one manifest warning", warnings)
	}
}

func TestApp_Check_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.probe.EXPECT().ResolvePackage(domain.DefaultCompilerPlugin).Return(domain.ErrPackageNotInstalled)
	h.probe.EXPECT().ResolvePackage(domain.DefaultPWAPlugin).Return(domain.ErrPackageNotInstalled)
	h.probe.EXPECT().ResolveAsset(domain.DefaultWebManifestPath()).Return(nil)

	err := h.app.Check(context.Background())
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("Check() error = %v, want ErrConfigInvalid", err)
	}
}

func TestApp_Explain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)

	var infos []string
	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		infos = append(infos, msg)
	}).Times(2)

	// A spreadsheet-hosted image matches both rules; declaration order
	// must hand it to the spreadsheet rule.
	err := h.app.Explain(context.Background(), "https://docs.google.com/chart.png")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("Info called %d times, want 2", len(infos))
	}
	if !strings.Contains(infos[1], "NetworkFirst") || !strings.Contains(infos[1], domain.SheetsCacheName) {
		t.Errorf("Info() = %q, want the spreadsheet rule", infos[1])
	}
}

func TestApp_Explain_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)

	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		if !strings.Contains(msg, "no cache rule matches") {
			t.Errorf("Info() = %q, want pass-through notice", msg)
		}
	})

	if err := h.app.Explain(context.Background(), "https://example.com/app.js"); err != nil {
		t.Fatalf("Explain() error = %v", err)
	}
}

func TestApp_Watch_RecompilesOnChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		configPath := filepath.Join(t.TempDir(), "sherpa.yaml")
		if err := os.WriteFile(configPath, []byte("production: true\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		h := newHarness(ctrl)
		h.app.WithDebounceWindow(10 * time.Millisecond)

		// Two passes: the initial one and the one the change triggers.
		// The third load resolves the output dir at watch start.
		h.expectResolvableDefaults(2)
		h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil).Times(3)
		h.emitter.EXPECT().
			Emit(gomock.Any(), gomock.Any(), gomock.Any(), domain.DefaultOutPath()).
			Return([]domain.Artifact{{Path: "dist/pipeline.json", Size: 412}}, nil).
			Times(2)

		events := make(chan ports.WatchEvent)
		h.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		h.watcher.EXPECT().Events().Return(eventSeq(events))
		h.watcher.EXPECT().Stop().DoAndReturn(func() error {
			close(events)
			return nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- h.app.Watch(ctx, app.WatchOptions{OutputMode: "linear"})
		}()

		// Initial pass settles.
		synctest.Wait()

		events <- ports.WatchEvent{Path: configPath, Operation: ports.OpWrite}
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}

		logs := h.stderr.String()
		if !strings.Contains(logs, "Compiling (initial)") {
			t.Errorf("stderr missing initial pass: %q", logs)
		}
		if !strings.Contains(logs, "Compiling (sherpa.yaml)") {
			t.Errorf("stderr missing triggered pass: %q", logs)
		}
		if got := strings.Count(logs, "Compiled 1 artifact(s)"); got != 2 {
			t.Errorf("found %d compile summaries, want 2; stderr: %q", got, logs)
		}
	})
}

func TestApp_Watch_UnchangedContentDoesNotRecompile(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		configPath := filepath.Join(t.TempDir(), "sherpa.yaml")
		if err := os.WriteFile(configPath, []byte("production: true\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		h := newHarness(ctrl)
		h.app.WithDebounceWindow(10 * time.Millisecond)

		// Initial pass, the first sighting pass, and nothing more: the
		// second touch leaves the content digest unchanged. One extra
		// load resolves the output dir at watch start.
		h.expectResolvableDefaults(2)
		h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil).Times(3)
		h.emitter.EXPECT().
			Emit(gomock.Any(), gomock.Any(), gomock.Any(), domain.DefaultOutPath()).
			Return([]domain.Artifact{{Path: "dist/pipeline.json", Size: 412}}, nil).
			Times(2)

		events := make(chan ports.WatchEvent)
		h.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		h.watcher.EXPECT().Events().Return(eventSeq(events))
		h.watcher.EXPECT().Stop().DoAndReturn(func() error {
			close(events)
			return nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- h.app.Watch(ctx, app.WatchOptions{OutputMode: "linear"})
		}()
		synctest.Wait()

		events <- ports.WatchEvent{Path: configPath, Operation: ports.OpWrite}
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		// Touch without modification: same digest, gate filters it.
		events <- ports.WatchEvent{Path: configPath, Operation: ports.OpWrite}
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}

		if got := strings.Count(h.stderr.String(), "Compiled 1 artifact(s)"); got != 2 {
			t.Errorf("found %d compile summaries, want 2", got)
		}
	})
}

func TestApp_Watch_IgnoresOwnArtifacts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		configPath := filepath.Join(t.TempDir(), "sherpa.yaml")
		if err := os.WriteFile(configPath, []byte("production: true\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		h := newHarness(ctrl)
		h.app.WithDebounceWindow(10 * time.Millisecond)

		// Events under the configured output dir are the emitter's own
		// writes and never count as passes; the config change still does.
		h.expectResolvableDefaults(2)
		h.loader.EXPECT().Load(".").
			Return(domain.RawOptions{OutDir: "build-out"}, nil).
			Times(3)
		h.emitter.EXPECT().
			Emit(gomock.Any(), gomock.Any(), gomock.Any(), "build-out").
			Return([]domain.Artifact{{Path: "build-out/pipeline.json", Size: 412}}, nil).
			Times(2)

		events := make(chan ports.WatchEvent)
		h.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		h.watcher.EXPECT().Events().Return(eventSeq(events))
		h.watcher.EXPECT().Stop().DoAndReturn(func() error {
			close(events)
			return nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- h.app.Watch(ctx, app.WatchOptions{OutputMode: "linear"})
		}()
		synctest.Wait()

		events <- ports.WatchEvent{Path: "build-out/pipeline.json", Operation: ports.OpCreate}
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		events <- ports.WatchEvent{Path: configPath, Operation: ports.OpWrite}
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}

		logs := h.stderr.String()
		if strings.Contains(logs, "Compiling (pipeline.json)") {
			t.Errorf("artifact write triggered a pass: %q", logs)
		}
		if got := strings.Count(logs, "Compiled 1 artifact(s)"); got != 2 {
			t.Errorf("found %d compile summaries, want 2; stderr: %q", got, logs)
		}
	})
}

func TestApp_Watch_TUIWritesDebugLog(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get current working directory: %v", err)
		}
		defer func() {
			if errChdir := os.Chdir(cwd); errChdir != nil {
				t.Fatalf("Failed to restore working directory: %v", errChdir)
			}
		}()
		if errChdir := os.Chdir(t.TempDir()); errChdir != nil {
			t.Fatalf("Failed to change into temp directory: %v", errChdir)
		}

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		h.app.WithOutput(io.Discard, io.Discard).WithTeaOptions(
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
			tea.WithoutRenderer(),
		)

		h.expectResolvableDefaults(1)
		h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil).Times(2)
		h.emitter.EXPECT().
			Emit(gomock.Any(), gomock.Any(), gomock.Any(), domain.DefaultOutPath()).
			Return([]domain.Artifact{{Path: "dist/pipeline.json", Size: 412}}, nil)

		events := make(chan ports.WatchEvent)
		h.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		h.watcher.EXPECT().Events().Return(eventSeq(events))
		h.watcher.EXPECT().Stop().DoAndReturn(func() error {
			close(events)
			return nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- h.app.Watch(ctx, app.WatchOptions{OutputMode: "tui"})
		}()
		synctest.Wait()

		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}

		if _, err := os.Stat(domain.DefaultDebugLogPath()); err != nil {
			t.Errorf("debug log not created: %v", err)
		}
	})
}

func TestApp_Watch_StartError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.watcher.EXPECT().Start(gomock.Any(), ".").Return(zerr.New("inotify limit"))

	err := h.app.Watch(context.Background(), app.WatchOptions{OutputMode: "linear"})
	if err == nil {
		t.Fatal("Watch() error = nil, want start failure")
	}
	if !strings.Contains(err.Error(), "failed to start file watcher") {
		t.Errorf("error = %v, want watcher context", err)
	}
}

func TestApp_Clean(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	defer func() {
		if errChdir := os.Chdir(cwd); errChdir != nil {
			t.Fatalf("Failed to restore working directory: %v", errChdir)
		}
	}()
	if errChdir := os.Chdir(t.TempDir()); errChdir != nil {
		t.Fatalf("Failed to change into temp directory: %v", errChdir)
	}

	for _, dir := range []string{domain.DefaultOutPath(), domain.DefaultSherpaPath()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "payload"), []byte("x"), 0o600); err != nil {
			t.Fatalf("write payload: %v", err)
		}
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, nil)
	h.logger.EXPECT().Info(gomock.Any()).Times(4)

	if err := h.app.Clean(context.Background(), app.CleanOptions{Artifacts: true, State: true}); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if _, err := os.Stat(domain.DefaultOutPath()); !os.IsNotExist(err) {
		t.Errorf("artifact dir still present: %v", err)
	}
	if _, err := os.Stat(domain.DefaultSherpaPath()); !os.IsNotExist(err) {
		t.Errorf("state dir still present: %v", err)
	}
}

func TestApp_Clean_ConfiguredOutDir(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	defer func() {
		if errChdir := os.Chdir(cwd); errChdir != nil {
			t.Fatalf("Failed to restore working directory: %v", errChdir)
		}
	}()
	if errChdir := os.Chdir(t.TempDir()); errChdir != nil {
		t.Fatalf("Failed to change into temp directory: %v", errChdir)
	}

	if err := os.MkdirAll("build-out", 0o750); err != nil {
		t.Fatalf("mkdir build-out: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{OutDir: "build-out"}, nil)
	h.logger.EXPECT().Info(gomock.Any()).Times(2)

	if err := h.app.Clean(context.Background(), app.CleanOptions{Artifacts: true}); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if _, err := os.Stat("build-out"); !os.IsNotExist(err) {
		t.Errorf("configured artifact dir still present: %v", err)
	}
}

func TestApp_Clean_ConfigUnreadable(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	defer func() {
		if errChdir := os.Chdir(cwd); errChdir != nil {
			t.Fatalf("Failed to restore working directory: %v", errChdir)
		}
	}()
	if errChdir := os.Chdir(t.TempDir()); errChdir != nil {
		t.Fatalf("Failed to change into temp directory: %v", errChdir)
	}

	if err := os.MkdirAll(domain.DefaultOutPath(), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	h.loader.EXPECT().Load(".").Return(domain.RawOptions{}, zerr.New("yaml exploded"))
	h.logger.EXPECT().Info(gomock.Any()).Times(2)

	if err := h.app.Clean(context.Background(), app.CleanOptions{Artifacts: true}); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if _, err := os.Stat(domain.DefaultOutPath()); !os.IsNotExist(err) {
		t.Errorf("default artifact dir still present: %v", err)
	}
}

func TestApp_Clean_NothingSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)

	if err := h.app.Clean(context.Background(), app.CleanOptions{}); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
}
