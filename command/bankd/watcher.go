// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/logger"
)

// configWatcher - watches the running configuration file and
// re-parses it on change so operators see errors before a restart
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
}

func newConfigWatcher(targetFile string, log *logger.L) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.FileDoesNotExist
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

func (w *configWatcher) start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		for {
			event := <-w.watcher.Events
			w.log.Infof("file event: %v", event)

			if "" == event.Name || event.Op&fsnotify.Remove == fsnotify.Remove {
				w.log.Warnf("configuration file %s removed, watching stopped", w.filePath)
				return
			}

			if path.Base(event.Name) != path.Base(w.filePath) {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Chmod == fsnotify.Chmod {
				_, err := getConfiguration(w.filePath)
				if nil != err {
					w.log.Errorf("configuration file %s changed but does not parse: %s", w.filePath, err)
					continue
				}
				w.log.Warn("configuration file changed, restart to apply")
			}
		}
	}()

	return nil
}
