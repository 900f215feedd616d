// Package watcher registers new lesson videos that appear in a folder.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/store"
)

// DefaultExtensions lists the video containers picked up by default.
var DefaultExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv", ".webm", ".m4v"}

// Config configures the folder watcher.
type Config struct {
	Dir             string   `yaml:"dir"`
	Recursive       bool     `yaml:"recursive"`
	Extensions      []string `yaml:"extensions"`
	ProcessExisting bool     `yaml:"process_existing"`

	// A new file is registered once its size has not changed, and no write
	// arrived, for SettleChecks consecutive checks SettleInterval apart.
	SettleInterval time.Duration `yaml:"settle_interval"`
	SettleChecks   int           `yaml:"settle_checks"`
}

// DefaultConfig returns the watcher defaults.
func DefaultConfig() Config {
	return Config{
		Dir:            "videos",
		Recursive:      true,
		Extensions:     DefaultExtensions,
		SettleInterval: 2 * time.Second,
		SettleChecks:   3,
	}
}

// settling tracks a file that is still being written.
type settling struct {
	size   int64
	stable int
	dirty  bool
}

// Watcher registers video files as pending media and reports each new
// registration on Registered.
type Watcher struct {
	cfg   Config
	media store.MediaRepo
	exts  map[string]bool
	out   chan int
	log   *logger.Logger

	// pending holds files seen by Run that have not settled yet. Only
	// touched by the Run loop.
	pending map[string]*settling
}

// New creates a Watcher for cfg.Dir.
func New(cfg Config, media store.MediaRepo, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	if cfg.SettleInterval <= 0 {
		cfg.SettleInterval = DefaultConfig().SettleInterval
	}
	if cfg.SettleChecks <= 0 {
		cfg.SettleChecks = DefaultConfig().SettleChecks
	}
	return &Watcher{
		cfg:     cfg,
		media:   media,
		exts:    set,
		out:     make(chan int, 64),
		log:     log.Named("watcher"),
		pending: map[string]*settling{},
	}
}

// Registered delivers the ID of every media row the watcher creates. Sends
// never block; a full channel drops the notification and the item is
// picked up by the next queue drain.
func (w *Watcher) Registered() <-chan int { return w.out }

// IsVideo reports whether path has one of the watched extensions.
func (w *Watcher) IsVideo(path string) bool {
	return w.exts[strings.ToLower(filepath.Ext(path))]
}

// ScanExisting walks the watched folder and registers every video that is
// not in the store yet. It returns the number of new registrations.
func (w *Watcher) ScanExisting(ctx context.Context) (int, error) {
	if err := w.ensureDir(); err != nil {
		return 0, err
	}
	w.log.Info("scanning existing files", "dir", w.cfg.Dir)

	count := 0
	err := filepath.WalkDir(w.cfg.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.Warn("walk error", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != w.cfg.Dir && !w.cfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.IsVideo(path) {
			return nil
		}
		ok, err := w.Register(ctx, path)
		if err != nil {
			w.log.Error("register failed", "path", path, "error", err)
			return nil
		}
		if ok {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	w.log.Info("scan complete", "registered", count)
	return count, nil
}

// Register records path as a pending media source. Missing and empty files
// are skipped, as are paths already in the store. The file's modification
// time becomes the creation time so queue order follows recording order.
func (w *Watcher) Register(ctx context.Context, path string) (bool, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.log.Warn("file vanished before registration", "path", path)
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, nil
	}
	if info.Size() == 0 {
		w.log.Warn("empty file skipped", "path", path)
		return false, nil
	}

	m, created, err := w.media.Register(ctx, store.NewMedia{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	})
	if err != nil {
		return false, err
	}
	if !created {
		w.log.Debug("already registered", "path", path, "media_id", m.ID)
		return false, nil
	}

	w.log.Info("video registered", "path", path, "media_id", m.ID, "size", info.Size())
	select {
	case w.out <- m.ID:
	default:
		w.log.Warn("notification dropped", "media_id", m.ID)
	}
	return true, nil
}

// Run watches the folder until ctx is cancelled. With ProcessExisting set
// the folder is scanned first. Files that appear while Run is watching are
// registered only after they stop growing.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.ensureDir(); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addDirs(fw, w.cfg.Dir); err != nil {
		return err
	}
	w.log.Info("watching folder", "dir", w.cfg.Dir, "recursive", w.cfg.Recursive)

	if w.cfg.ProcessExisting {
		if _, err := w.ScanExisting(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.log.Error("initial scan failed", "error", err)
		}
	}

	settle := time.NewTicker(w.cfg.SettleInterval)
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return nil
		case <-settle.C:
			w.checkPending(ctx)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fw, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fs watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		delete(w.pending, ev.Name)
		return
	}
	if ev.Has(fsnotify.Write) {
		if p, ok := w.pending[ev.Name]; ok {
			p.dirty = true
			p.stable = 0
		}
		return
	}
	if !ev.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(ev.Name)
	if err == nil && info.IsDir() {
		if w.cfg.Recursive {
			if err := w.addDirs(fw, ev.Name); err != nil {
				w.log.Warn("could not watch new directory", "path", ev.Name, "error", err)
			}
			// Files moved in together with the directory never fire their
			// own events.
			if _, err := w.scanDir(ctx, ev.Name); err != nil {
				w.log.Warn("could not scan new directory", "path", ev.Name, "error", err)
			}
		}
		return
	}

	if !w.IsVideo(ev.Name) {
		return
	}
	w.log.Info("new video detected", "path", ev.Name)
	p := &settling{size: -1}
	if err == nil {
		p.size = info.Size()
	}
	w.pending[ev.Name] = p
}

// checkPending registers every pending file whose size held steady for
// SettleChecks checks in a row.
func (w *Watcher) checkPending(ctx context.Context) {
	for path, p := range w.pending {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				delete(w.pending, path)
			}
			continue
		}
		size := info.Size()
		if p.dirty || size != p.size || size == 0 {
			p.dirty = false
			p.size = size
			p.stable = 0
			continue
		}
		p.stable++
		if p.stable < w.cfg.SettleChecks {
			continue
		}
		delete(w.pending, path)
		if _, err := w.Register(ctx, path); err != nil {
			w.log.Error("register failed", "path", path, "error", err)
		}
	}
}

func (w *Watcher) scanDir(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !w.IsVideo(path) {
			return nil
		}
		ok, rerr := w.Register(ctx, path)
		if rerr == nil && ok {
			count++
		}
		return nil
	})
	return count, err
}

func (w *Watcher) addDirs(fw *fsnotify.Watcher, root string) error {
	if !w.cfg.Recursive {
		return fw.Add(root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

func (w *Watcher) ensureDir() error {
	info, err := os.Stat(w.cfg.Dir)
	if errors.Is(err, os.ErrNotExist) {
		w.log.Warn("watched folder missing, creating it", "dir", w.cfg.Dir)
		return os.MkdirAll(w.cfg.Dir, 0o755)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", w.cfg.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", w.cfg.Dir)
	}
	return nil
}
