package export

import (
	"os"
	"path"
	"runtime/debug"
	"time"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardgen/file"
)

// Cleaner removes export files once they outlive the ttl. Instead of
// deleting a file right after delivery it stays in the temp dir for
// re-download until it expires.
type Cleaner struct {
	dir      string
	ttl      time.Duration
	interval time.Duration
	created  map[string]time.Time
}

func NewCleaner(dir string, ttl time.Duration) *Cleaner {
	return &Cleaner{
		dir:      dir,
		ttl:      ttl,
		interval: time.Minute,
		created:  make(map[string]time.Time),
	}
}

// Watch blocks, tracking export files in the temp dir and pruning the
// expired ones. Run it on its own goroutine.
func (c *Cleaner) Watch() {
	defer func() {
		if err := recover(); err != nil {
			if v, ok := err.(error); ok {
				logger.Errorf("panic: %s\n", v.Error())
			}
			logger.Errorf("watching export directory error: %s", string(debug.Stack()))
		}
	}()
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		logger.Errorf("create export dir %s error: %s", c.dir, err)
		return
	}
	c.prepare()
	c.beginWatching()
}

// prepare sweeps files already present in the temp dir, aged by mtime,
// so exports survive a restart but still expire.
func (c *Cleaner) prepare() {
	filepaths, err := file.SearchDir(c.dir, func(filepath string) bool {
		return path.Ext(filepath) == fileExt
	})
	if err != nil {
		logger.Errorf("prepare export directory failed, error: %s", err)
		return
	}
	for _, filepath := range filepaths {
		if info, err := os.Stat(filepath); err == nil {
			c.created[filepath] = info.ModTime()
		}
	}
}

func (c *Cleaner) beginWatching() {
	var (
		watcher *fsnotify.Watcher
		err     error
	)
	if watcher, err = fsnotify.NewWatcher(); err != nil {
		logger.Error(err)
		return
	}
	defer func() {
		if err = watcher.Close(); err != nil {
			logger.Error(err)
		}
	}()
	if err = watcher.Add(c.dir); err != nil {
		logger.Error(err)
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == fsnotify.Create && path.Ext(event.Name) == fileExt {
				logger.Infof("export file created %s", event.Name)
				c.created[event.Name] = time.Now()
			} else if event.Op&fsnotify.Remove == fsnotify.Remove {
				delete(c.created, event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("watch %s error: %s", c.dir, err)
		case now := <-ticker.C:
			c.prune(now)
		}
	}
}

// prune removes every tracked file past its ttl.
func (c *Cleaner) prune(now time.Time) {
	for filepath, created := range c.created {
		if now.Sub(created) < c.ttl {
			continue
		}
		if err := os.Remove(filepath); err != nil && !os.IsNotExist(err) {
			logger.Errorf("remove expired export %s error: %s", filepath, err)
			continue
		}
		logger.Infof("expired export removed: %s", filepath)
		delete(c.created, filepath)
	}
}
