//
// Copyright 2026 The StatisticsVisualizer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/golang/glog"
)

// changeOps are the file operations that trigger a recomputation.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watch writes the report to w once, then again after every change of the
// grid file, until ctx is done. Changes closer together than debounce are
// coalesced into one recomputation. A failed recomputation is logged and
// the previous report stays the latest one written.
//
// The directory of the file is watched rather than the file itself, so that
// editors replacing the file on save are followed. Recomputations run on
// the calling goroutine, one at a time.
func (p *Pipeline) Watch(ctx context.Context, w io.Writer, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(p.Path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", p.Path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %q: %w", filepath.Dir(target), err)
	}

	recompute := func() {
		if err := p.Run(w); err != nil {
			log.Warningf("Watch: %v", err)
		}
	}
	recompute()

	// One timer serves every burst of events; it starts stopped.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	resetTimer := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			log.V(1).Infof("Watch: stopping, %v", ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target || event.Op&changeOps == 0 {
				continue
			}
			log.V(2).Infof("Watch: %s", event)
			resetTimer()
		case <-timer.C:
			log.V(1).Infof("Watch: %s changed, recomputing", p.Path)
			recompute()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warningf("Watch: %v", err)
		}
	}
}
