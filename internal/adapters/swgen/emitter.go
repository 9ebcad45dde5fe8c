// Package swgen emits the pipeline, service worker policy, and precache
// artifacts consumed by the bundler and the service worker generator.
package swgen

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Emitter implements ports.ArtifactEmitter on the local filesystem.
type Emitter struct {
	root     string
	contract domain.AppContract
}

// New creates an Emitter rooted at the given project directory. The
// root anchors the public asset scan and the web manifest lookup; the
// contract names the application in generated fallback artifacts.
func New(root string, contract domain.AppContract) *Emitter {
	if root == "" {
		root = "."
	}
	return &Emitter{root: filepath.Clean(root), contract: contract}
}

// emitJob names one artifact and builds its content.
type emitJob struct {
	name  string
	build func() ([]byte, error)
}

// Emit writes every artifact for the pipeline into outDir. Artifacts
// are built and written concurrently but returned in plan order, so
// the slice is stable for a given pipeline.
func (e *Emitter) Emit(
	ctx context.Context,
	pipeline domain.Pipeline,
	opts domain.PluginOptions,
	outDir string,
) ([]domain.Artifact, error) {
	if outDir == "" {
		outDir = domain.DefaultOutPath()
	}
	if err := os.MkdirAll(outDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutDirCreateFailed.Error()), "dir", outDir)
	}

	jobs := e.planJobs(pipeline, opts)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	artifacts := make([]domain.Artifact, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := job.build()
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, job.name)
			if err := atomicWriteFile(path, data); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", job.name)
			}

			artifacts[i] = domain.Artifact{Path: path, Size: int64(len(data))}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// planJobs decides which artifacts the pipeline needs. The pipeline and
// policy always ship; the precache manifest and the fallback web
// manifest only exist for PWA-enabled builds.
func (e *Emitter) planJobs(pipeline domain.Pipeline, opts domain.PluginOptions) []emitJob {
	jobs := []emitJob{
		{
			name:  domain.PipelineFileName,
			build: func() ([]byte, error) { return marshalArtifact(pipeline) },
		},
		{
			name: domain.PolicyFileName,
			build: func() ([]byte, error) {
				return marshalArtifact(newPolicyDocument(pipeline.Mode, opts.SheetsOrigin()))
			},
		},
	}

	if !opts.PWA() {
		return jobs
	}

	jobs = append(jobs, emitJob{
		name: domain.PrecacheFileName,
		build: func() ([]byte, error) {
			entries, err := e.scanPrecache()
			if err != nil {
				return nil, err
			}
			return marshalArtifact(entries)
		},
	})

	if !e.webManifestExists(opts.WebManifest()) {
		jobs = append(jobs, emitJob{
			name:  domain.WebManifestFileName,
			build: func() ([]byte, error) { return marshalArtifact(e.fallbackManifest()) },
		})
	}

	return jobs
}

// policyDocument is the sw-policy.json schema consumed by the service
// worker generator.
type policyDocument struct {
	Mode           domain.BuildMode   `json:"mode"`
	RuntimeCaching []domain.CacheRule `json:"runtimeCaching"`
}

func newPolicyDocument(mode domain.BuildMode, sheetsOrigin string) policyDocument {
	rules := domain.BuildCacheRules(mode, sheetsOrigin)
	if rules == nil {
		rules = []domain.CacheRule{}
	}
	return policyDocument{Mode: mode, RuntimeCaching: rules}
}

// webManifest is the minimal installable manifest emitted when the
// project ships none. Name, short name and theme come from the app
// contract in the environment.
type webManifest struct {
	Name       string `json:"name"`
	ShortName  string `json:"short_name"`
	StartURL   string `json:"start_url"`
	Display    string `json:"display"`
	ThemeColor string `json:"theme_color"`
}

func (e *Emitter) fallbackManifest() webManifest {
	return webManifest{
		Name:       e.contract.AppName,
		ShortName:  e.contract.ShortName,
		StartURL:   "/",
		Display:    "standalone",
		ThemeColor: e.contract.ThemeColor,
	}
}

func (e *Emitter) webManifestExists(manifestPath string) bool {
	info, err := os.Stat(filepath.Join(e.root, filepath.FromSlash(manifestPath)))
	return err == nil && !info.IsDir()
}

// marshalArtifact renders an artifact as indented JSON with a trailing
// newline.
func marshalArtifact(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrArtifactMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp
// file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "sherpa-artifact-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up the temp file on any failure before the rename
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
