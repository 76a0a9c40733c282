package cli

import (
	"context"

	"emdtojson/source"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch converts every dump created or rewritten in dir until ctx is done.
// Destinations are always overwritten since a dump is rewritten in place
// when its checksum is patched.
func (c Converter) Watch(ctx context.Context, dir string, outDir string, extension string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		err := errors.Wrap(err, "Watch error: create watcher")
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		err := errors.Wrapf(err, "Watch error: watch %s", dir)
		return err
	}
	c.logger().Info("watching", "dir", dir, "out_dir", outDir, "extension", extension)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			c.handleEvent(event, outDir, extension)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger().Warn("fsnotify error", "error", err)
		}
	}
}

func (c Converter) handleEvent(event fsnotify.Event, outDir string, extension string) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !source.MatchesExtension(event.Name, extension) {
		return
	}
	to := DestinationPath(outDir, event.Name, c.Output.Format)
	if _, err := c.ConvertFile(event.Name, to, true, nil); err != nil {
		// A dump still being written fails as truncated and is retried on
		// its next write event.
		c.logger().Warn("conversion failed", "from", event.Name, "error", err)
	}
}
