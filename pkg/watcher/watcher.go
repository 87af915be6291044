// Package watcher surfaces external edits to a pages directory so the
// workspace can re-derive its state. It deliberately reports no detail:
// any burst of filesystem activity collapses into a single "changed"
// notification, and the consumer rescans the directory and reloads the
// coordinator, which already handles additions, renames and deletions.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounceDelay = 100 * time.Millisecond

// Watch streams debounced change notifications for dir until ctx is
// cancelled. The channel is closed when the watch ends. Notifications are
// dropped rather than queued if the consumer is not draining: a later
// rescan picks up everything anyway.
func Watch(ctx context.Context, dir string, log *logrus.Logger) (<-chan struct{}, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ensure pages dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := addRecursive(fw, dir); err != nil {
		fw.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer fw.Close()

		var timer *time.Timer
		fire := func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Warnf("watch %s: %v", dir, err)
			case evt, ok := <-fw.Events:
				if !ok {
					return
				}
				// New directories need their own watch before files land
				// inside them.
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						if err := fw.Add(evt.Name); err != nil {
							log.Warnf("watch %s: %v", evt.Name, err)
						}
					}
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDelay, fire)
			}
		}
	}()

	return changes, nil
}

func addRecursive(fw *fsnotify.Watcher, base string) error {
	return filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}
