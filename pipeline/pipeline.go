// Package pipeline runs a download from link to muxed file.
//
// Decisions live in the manifest, catalog and selection packages; this
// package sequences them and performs the I/O around them.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/history"
	"github.com/vimeodl/vimeodl/log"
	"github.com/vimeodl/vimeodl/manifest"
	"github.com/vimeodl/vimeodl/prompt"
	"github.com/vimeodl/vimeodl/selection"
	"github.com/vimeodl/vimeodl/tool"
	"github.com/vimeodl/vimeodl/util"
)

var (
	// ErrMissingStreamForMux is returned when the run lacks a video or an audio stream.
	ErrMissingStreamForMux = errors.New("need video and audio picked")

	// ErrDownloadFailed is returned in strict mode when a stream download fails.
	ErrDownloadFailed = errors.New("stream download failed")

	// ErrMuxFailed is returned in strict mode when the muxer fails.
	ErrMuxFailed = errors.New("muxing failed")
)

// Prompter supplies the interactive answers of a run.
type Prompter interface {
	Link() (string, error)
	Title() (string, error)
	Selection(options []catalog.Option) (string, error)
}

// ManifestSource retrieves a manifest by link.
type ManifestSource interface {
	Fetch(ctx context.Context, link string) (*manifest.Manifest, error)
}

// Downloader fetches one stream into a file.
type Downloader interface {
	Download(ctx context.Context, url, output string) tool.Result
}

// Muxer combines the two stream files.
type Muxer interface {
	Mux(ctx context.Context, video, audio, output string) tool.Result
}

// Options are the per-run choices.
type Options struct {
	Mode selection.Mode
	// Link and Title skip their prompts when set.
	Link  string
	Title string
	// Strict makes muxing conditional on both downloads succeeding and
	// turns a failed mux into an error.
	Strict bool
	// SanitizeTitle normalizes the title instead of only neutralizing path separators.
	SanitizeTitle bool
}

// Deps are the collaborators of a run.
type Deps struct {
	Layout     Layout
	Probe      func(ctx context.Context) error
	Prompter   Prompter
	Manifests  ManifestSource
	Downloader Downloader
	Muxer      Muxer
	// Remember stores a finished download. Nil disables history.
	Remember func(*history.Record) error
	Out      io.Writer
}

// Report describes what a run did, as far as it got.
type Report struct {
	RunID     string
	Prefix    string
	Catalog   *catalog.Catalog
	Outcome   selection.Outcome
	Downloads []tool.Result
	Mux       mo.Option[tool.Result]
	// Output is the muxed file. Empty unless the muxer succeeded.
	Output string
}

type run struct {
	options Options
	deps    Deps
	report  *Report
	log     *logrus.Entry
}

// Run executes one download. Scratch space is emptied before the run and
// removed after it, whether or not the run succeeded.
func Run(ctx context.Context, options Options, deps Deps) (*Report, error) {
	if deps.Out == nil {
		deps.Out = io.Discard
	}

	r := &run{
		options: options,
		deps:    deps,
		report:  &Report{RunID: uuid.NewString()},
	}
	r.log = log.Run(r.report.RunID)

	if err := deps.Layout.Prepare(); err != nil {
		return r.report, fmt.Errorf("prepare workspace: %w", err)
	}

	err := r.execute(ctx)
	if err != nil {
		r.log.WithError(err).Error("run failed")
	}

	prompt.Info(deps.Out, "Deleting temporary files..")
	if cleanupErr := deps.Layout.Cleanup(); cleanupErr != nil {
		r.log.WithError(cleanupErr).Warn("cleanup failed")
		if err == nil {
			err = fmt.Errorf("cleanup: %w", cleanupErr)
		}
	}

	if err == nil {
		prompt.Info(deps.Out, "All done.")
	}

	return r.report, err
}

func (r *run) execute(ctx context.Context) error {
	if r.deps.Probe != nil {
		if err := r.deps.Probe(ctx); err != nil {
			return err
		}
	}

	link, err := r.answer(r.options.Link, func() (string, error) { return r.deps.Prompter.Link() })
	if err != nil {
		return err
	}

	prefix, err := manifest.Prefix(link)
	if err != nil {
		return err
	}
	r.report.Prefix = prefix

	title, err := r.answer(r.options.Title, func() (string, error) { return r.deps.Prompter.Title() })
	if err != nil {
		return err
	}

	m, err := r.deps.Manifests.Fetch(ctx, link)
	if err != nil {
		return err
	}
	r.log.WithField("keys", m.Keys()).Debug("manifest parsed")

	c, err := catalog.Build(prefix, m)
	if err != nil {
		return err
	}
	r.report.Catalog = c
	r.log.Infof("catalog: %s, %s",
		util.Quantify(len(c.Video), "video stream", "video streams"),
		util.Quantify(len(c.Audio), "audio stream", "audio streams"),
	)

	outcome, err := r.choose(c)
	if err != nil {
		return err
	}
	r.report.Outcome = outcome

	failed := r.download(ctx, outcome)

	video, hasVideo := outcome.Video.Get()
	audio, hasAudio := outcome.Audio.Get()
	if !hasVideo || !hasAudio {
		return ErrMissingStreamForMux
	}

	if failed && r.options.Strict {
		return ErrDownloadFailed
	}

	return r.mux(ctx, video, audio, title, m.ClipID())
}

func (r *run) answer(preset string, ask func() (string, error)) (string, error) {
	if preset != "" {
		return preset, nil
	}
	return ask()
}

func (r *run) choose(c *catalog.Catalog) (selection.Outcome, error) {
	if r.options.Mode == selection.Automatic {
		outcome := selection.Auto(c)
		prompt.Best(r.deps.Out,
			labelOf(outcome.Video),
			labelOf(outcome.Audio),
		)
		return outcome, nil
	}

	options := c.Options()
	fmt.Fprintln(r.deps.Out)
	prompt.Options(r.deps.Out, options)

	input, err := r.deps.Prompter.Selection(options)
	if err != nil {
		return selection.Outcome{}, err
	}

	outcome, indices, err := selection.FromInput(options, input)
	if err != nil {
		return selection.Outcome{}, err
	}

	fmt.Fprintf(r.deps.Out, "\nSelected: %s\n", strings.Join(lo.Map(indices, func(n int, _ int) string {
		return fmt.Sprint(n)
	}), ", "))

	return outcome, nil
}

// download fetches every chosen variant and reports whether any failed.
func (r *run) download(ctx context.Context, outcome selection.Outcome) (failed bool) {
	for _, v := range outcome.Variants() {
		fmt.Fprintf(r.deps.Out, "\n%s\n", v.Label())

		output := filepath.Join(r.deps.Layout.Scratch, v.Filename())
		result := r.deps.Downloader.Download(ctx, v.URL, output)
		r.report.Downloads = append(r.report.Downloads, result)

		if !result.OK() {
			failed = true
			r.log.WithError(result.Err).Warnf("%s download failed", v.Kind)
			prompt.Error(r.deps.Out, fmt.Errorf("%s download failed: %w", v.Kind, result.Err))
		}
	}

	return failed
}

func (r *run) mux(ctx context.Context, video, audio catalog.Variant, title, clipID string) error {
	name := util.SafeFilename(title)
	if r.options.SanitizeTitle {
		name = util.SanitizeFilename(title)
	}

	output := filepath.Join(r.deps.Layout.Finished, fmt.Sprintf("%s_%s.mp4", video.Label(), name))

	fmt.Fprintln(r.deps.Out)
	prompt.Info(r.deps.Out, "ffmpeg process started...")
	fmt.Fprintln(r.deps.Out)

	result := r.deps.Muxer.Mux(ctx,
		filepath.Join(r.deps.Layout.Scratch, video.Filename()),
		filepath.Join(r.deps.Layout.Scratch, audio.Filename()),
		output,
	)
	r.report.Mux = mo.Some(result)

	if !result.OK() {
		r.log.WithError(result.Err).Warn("mux failed")
		if r.options.Strict {
			return fmt.Errorf("%w: %w", ErrMuxFailed, result.Err)
		}
		prompt.Error(r.deps.Out, result.Err)
	}

	fmt.Fprintln(r.deps.Out)
	prompt.Info(r.deps.Out, "file moved here:\n %s", output)

	if !result.OK() {
		return nil
	}
	r.report.Output = output

	if r.deps.Remember != nil {
		err := r.deps.Remember(&history.Record{
			ID:     r.report.RunID,
			Title:  title,
			Output: output,
			Video:  video.Label(),
			Audio:  audio.Label(),
			ClipID: clipID,
		})
		if err != nil {
			r.log.WithError(err).Warn("history not saved")
		}
	}

	return nil
}

func labelOf(v mo.Option[catalog.Variant]) string {
	if chosen, ok := v.Get(); ok {
		return chosen.Label()
	}
	return "none"
}
