package organizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"hoarder/internal/capture"
	"hoarder/internal/identification"
	"hoarder/internal/media"
	"hoarder/internal/naming"
	"hoarder/internal/services"
)

// ErrSkipped marks a file the organizer has no destination for: an
// unsupported kind in organized mode, or an image or video without metadata.
var ErrSkipped = errors.New("unsupported or unidentifiable")

// Mode selects the destination layout.
type Mode int

const (
	// ModeFlat renames files in place.
	ModeFlat Mode = iota
	// ModeOrganized moves files into year (and per-title) directories.
	ModeOrganized
)

func (m Mode) String() string {
	if m == ModeOrganized {
		return "organized"
	}
	return "flat"
}

const (
	defaultImageExt    = ".jpg"
	defaultVideoExt    = ".mp4"
	defaultImagePrefix = "IMG_"
)

// Options configure a Planner.
type Options struct {
	Mode Mode
	// Prefix and Suffix apply to plain files in flat mode.
	Prefix string
	Suffix string
	// ImagePrefix starts flat-mode image names. Empty means "IMG_".
	ImagePrefix string
}

// Metadata is what the extractors learned about a file. A zero Date or an
// empty Title.Title means that piece is unknown.
type Metadata struct {
	Date  capture.Date
	Title identification.TitleRecord
}

// RenamePlan is a computed move. It is not executed until a Mover applies it.
type RenamePlan struct {
	Source      string
	Destination string
}

// Noop reports whether applying the plan would leave the file where it is.
func (p RenamePlan) Noop() bool {
	return filepath.Clean(p.Source) == filepath.Clean(p.Destination)
}

// Planner computes destinations. Names that could collide are numbered
// through the shared counter, keyed by destination directory and base name.
type Planner struct {
	opts    Options
	counter *naming.Counter
}

// NewPlanner builds a planner. A nil counter gets a fresh one.
func NewPlanner(counter *naming.Counter, opts Options) *Planner {
	if counter == nil {
		counter = naming.NewCounter()
	}
	if strings.TrimSpace(opts.ImagePrefix) == "" {
		opts.ImagePrefix = defaultImagePrefix
	}
	return &Planner{opts: opts, counter: counter}
}

// Options returns the planner configuration.
func (p *Planner) Options() Options { return p.opts }

// Plan computes the destination for path. Planning the same path twice in a
// run yields the same destination.
func (p *Planner) Plan(path string, kind media.Kind, meta Metadata) (RenamePlan, error) {
	path = filepath.Clean(path)
	switch kind {
	case media.KindImage:
		if meta.Date.IsZero() {
			return p.unidentified(path, "no capture date")
		}
		if p.opts.Mode == ModeOrganized {
			return p.organizedImage(path, meta.Date), nil
		}
		return p.flatImage(path, meta.Date), nil
	case media.KindVideo:
		safe := naming.SanitizeTitle(meta.Title.Title)
		if safe == "" || meta.Title.Released.IsZero() {
			return p.unidentified(path, "no title match")
		}
		if p.opts.Mode == ModeOrganized {
			return p.organizedVideo(path, safe, meta.Title.Released), nil
		}
		return p.flatVideo(path, safe, meta.Title.Released), nil
	case media.KindPlain:
		if p.opts.Mode == ModeOrganized {
			return RenamePlan{}, services.Wrap(services.ErrNotFound, "plan", "organize", "plain files are not organized", ErrSkipped)
		}
		return p.flatPlain(path), nil
	default:
		return RenamePlan{}, services.Wrap(services.ErrValidation, "plan", "classify", fmt.Sprintf("unknown file kind %s", kind), nil)
	}
}

// unidentified handles images and videos without metadata: organized mode
// leaves them alone, flat mode applies the plain prefix/suffix rule.
func (p *Planner) unidentified(path, reason string) (RenamePlan, error) {
	if p.opts.Mode == ModeOrganized {
		return RenamePlan{}, services.Wrap(services.ErrNotFound, "plan", "organize", reason, ErrSkipped)
	}
	return p.flatPlain(path), nil
}

func (p *Planner) flatPlain(path string) RenamePlan {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return RenamePlan{
		Source:      path,
		Destination: filepath.Join(dir, p.opts.Prefix+stem+p.opts.Suffix+ext),
	}
}

func (p *Planner) flatImage(path string, date capture.Date) RenamePlan {
	dir := filepath.Dir(path)
	base := p.opts.ImagePrefix + date.Compact()
	return p.numbered(path, dir, base, defaultImageExt)
}

func (p *Planner) organizedImage(path string, date capture.Date) RenamePlan {
	root := bucketRoot(filepath.Dir(path), date.YearString())
	dir := filepath.Join(root, date.YearString())
	return p.numbered(path, dir, date.ISO(), extOr(path, defaultImageExt))
}

func (p *Planner) flatVideo(path, safe string, released capture.Date) RenamePlan {
	dir := filepath.Dir(path)
	return p.numbered(path, dir, titleToken(safe, released), extOr(path, defaultVideoExt))
}

func (p *Planner) organizedVideo(path, safe string, released capture.Date) RenamePlan {
	token := titleToken(safe, released)
	root := bucketRoot(filepath.Dir(path), released.YearString(), token)
	dir := filepath.Join(root, released.YearString(), token)
	return p.numbered(path, dir, token, extOr(path, defaultVideoExt))
}

// numbered claims an ordinal for dir/base and renders the final path.
func (p *Planner) numbered(source, dir, base, ext string) RenamePlan {
	n := p.counter.Claim(filepath.Join(dir, base), source)
	return RenamePlan{
		Source:      source,
		Destination: filepath.Join(dir, naming.WithSuffix(base, n)+ext),
	}
}

// titleToken renders "<Safe.Title>.(<year>)".
func titleToken(safe string, released capture.Date) string {
	return safe + ".(" + released.YearString() + ")"
}

// bucketRoot returns the directory the layout hangs off. A file already
// sitting in its bucket (dir ends with the given segments) keeps the bucket's
// parent as root, so reorganizing an organized tree is a no-op.
func bucketRoot(dir string, segments ...string) string {
	current := dir
	for i := len(segments) - 1; i >= 0; i-- {
		if filepath.Base(current) != segments[i] {
			return dir
		}
		current = filepath.Dir(current)
	}
	return current
}

func extOr(path, fallback string) string {
	if ext := filepath.Ext(filepath.Base(path)); ext != "" && ext != filepath.Base(path) {
		return ext
	}
	return fallback
}
