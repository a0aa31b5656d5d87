// Package producer renders a transition between two image files and
// writes the frames to a video or PNG sequence.
package producer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/transition"
	"github.com/gogpu/transition/internal/config"
	"github.com/gogpu/transition/internal/encoder"
	intImage "github.com/gogpu/transition/internal/image"
	"github.com/gogpu/transition/internal/parallel"
)

// Params describe one run.
type Params struct {
	Image1, Image2 string
	ConfigPath     string
	Output         string

	// FPS is the frame rate used when the document has none; ≤ 0 means 30.
	FPS float64

	// Workers is the render concurrency; ≤ 0 uses GOMAXPROCS.
	Workers int

	// FFmpeg is the ffmpeg executable for video outputs.
	FFmpeg string

	// Progress receives a progress bar when non-nil.
	Progress io.Writer

	// Summary receives the final "Wrote N frames" line when non-nil.
	Summary io.Writer
}

// Result reports what a run produced.
type Result struct {
	RunID  string
	Frames int
	FPS    float64
	Width  int
	Height int
	Kind   transition.Kind
}

// Producer drives one run.
type Producer struct {
	params Params
	log    *slog.Logger
}

// New returns a producer for p.
func New(p Params) *Producer {
	return &Producer{params: p}
}

// Run loads the inputs, builds the transition, renders every frame and
// writes them in order. Failures are returned as *Error carrying the exit
// code of the failing stage.
func (p *Producer) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	p.log = transition.Logger().With(slog.String("run", res.RunID))
	start := time.Now()

	a, b, doc, err := p.load()
	if err != nil {
		return res, err
	}

	tr, err := transition.FromDocument(doc, p.params.FPS, a.Width(), a.Height())
	if err != nil {
		return res, fail(CodeTransition, "build transition: %w", err)
	}
	res.Frames, res.FPS, res.Kind = tr.FrameCount(), tr.FPS(), tr.Kind()
	res.Width, res.Height = a.Width(), a.Height()

	lock := flock.New(lockPath(p.params.Output))
	ok, err := lock.TryLock()
	if err != nil {
		return res, fail(CodeEncoder, "lock output: %w", err)
	}
	if !ok {
		return res, &Error{Code: CodeEncoder, Err: fmt.Errorf("%w: %s", ErrOutputLocked, p.params.Output)}
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			p.log.Warn("release output lock", slog.Any("error", err))
		}
		_ = os.Remove(lock.Path())
	}()

	sink, err := encoder.Open(ctx, encoder.Options{
		Path:   p.params.Output,
		Width:  a.Width(),
		Height: a.Height(),
		FPS:    tr.FPS(),
		Codec:  docCodec(doc),
		FFmpeg: p.params.FFmpeg,
	})
	if err != nil {
		return res, fail(CodeEncoder, "open output: %w", err)
	}

	renderErr := p.render(ctx, tr, a, b, sink)
	closeErr := sink.Close()
	if renderErr != nil {
		return res, renderErr
	}
	if closeErr != nil {
		return res, fail(CodeEncoder, "finish output: %w", closeErr)
	}

	p.log.Info("output written",
		slog.String("output", p.params.Output),
		slog.String("kind", tr.Kind().String()),
		slog.Int("frames", res.Frames),
		slog.Duration("elapsed", time.Since(start)))
	if p.params.Summary != nil {
		fmt.Fprintf(p.params.Summary, "Wrote %d frames at %g fps to '%s'\n", res.Frames, res.FPS, p.params.Output)
	}
	return res, nil
}

// load reads both images and the document and brings the images to a
// common size.
func (p *Producer) load() (a, b *intImage.ImageBuf, doc *config.Document, err error) {
	a, err = intImage.LoadImage(p.params.Image1)
	if err != nil {
		return nil, nil, nil, fail(CodeImageRead, "read %s: %w", p.params.Image1, err)
	}
	b, err = intImage.LoadImage(p.params.Image2)
	if err != nil {
		return nil, nil, nil, fail(CodeImageRead, "read %s: %w", p.params.Image2, err)
	}
	doc, err = config.Load(p.params.ConfigPath)
	if err != nil {
		return nil, nil, nil, fail(CodeConfig, "config: %w", err)
	}
	p.log.Info("inputs loaded",
		slog.String("image1", p.params.Image1),
		slog.String("image2", p.params.Image2),
		slog.Int("width", a.Width()),
		slog.Int("height", a.Height()))

	if b.Width() != a.Width() || b.Height() != a.Height() {
		p.log.Debug("resizing second image",
			slog.Int("from_width", b.Width()), slog.Int("from_height", b.Height()))
		if b, err = intImage.Resize(b, a.Width(), a.Height()); err != nil {
			return nil, nil, nil, fail(CodeImageRead, "resize %s: %w", p.params.Image2, err)
		}
	}

	w, h := a.Width(), a.Height()
	if doc.Width != nil && *doc.Width > 0 {
		w = *doc.Width
	}
	if doc.Height != nil && *doc.Height > 0 {
		h = *doc.Height
	}
	if w != a.Width() || h != a.Height() {
		if a, err = intImage.Resize(a, w, h); err != nil {
			return nil, nil, nil, fail(CodeImageRead, "resize to %dx%d: %w", w, h, err)
		}
		if b, err = intImage.Resize(b, w, h); err != nil {
			return nil, nil, nil, fail(CodeImageRead, "resize to %dx%d: %w", w, h, err)
		}
	}
	return a, b, doc, nil
}

// errEmit marks failures raised while writing a rendered frame.
type errEmit struct{ err error }

func (e errEmit) Error() string { return e.err.Error() }
func (e errEmit) Unwrap() error { return e.err }

func (p *Producer) render(ctx context.Context, tr *transition.Transition, a, b *intImage.ImageBuf, sink encoder.Sink) error {
	workers := p.params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	var bar *progressbar.ProgressBar
	if p.params.Progress != nil {
		bar = progressbar.NewOptions(tr.FrameCount(),
			progressbar.OptionSetWriter(p.params.Progress),
			progressbar.OptionSetDescription(tr.Kind().String()),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
	}

	err := parallel.Ordered(ctx, pool, tr.FrameCount(), 0,
		func(i int) (*intImage.ImageBuf, error) {
			return tr.RenderFrame(i, a, b)
		},
		func(i int, f *intImage.ImageBuf) error {
			if err := sink.WriteFrame(f); err != nil {
				return errEmit{err: fmt.Errorf("frame %d: %w", i, err)}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		},
	)

	var emitErr errEmit
	switch {
	case err == nil:
		return nil
	case errors.As(err, &emitErr):
		return fail(CodeEncoder, "write output: %w", emitErr.err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fail(CodeOther, "render: %w", err)
	default:
		return fail(CodeTransition, "render: %w", err)
	}
}

// lockPath returns the lock file guarding output.
func lockPath(output string) string {
	if fi, err := os.Stat(output); err == nil && fi.IsDir() {
		return filepath.Join(output, ".transition.lock")
	}
	return output + ".lock"
}

func docCodec(doc *config.Document) string {
	if doc == nil {
		return ""
	}
	return doc.Codec
}
