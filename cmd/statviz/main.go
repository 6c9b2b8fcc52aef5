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

// statviz computes descriptive statistics of one row of a grid file.
// Usage example:
//
//	statviz analyze -i data/grid.csv --row 0 --format markdown
//	statviz analyze data/grid.txt --weights auto
//	statviz watch -i data/grid.csv --debounce 250ms
//
// Settings are read, in increasing order of precedence, from defaults, a
// .statviz.yaml file in the working or home directory (or --config),
// STATVIZ_* environment variables and flags. glog flags such as --v and
// --logtostderr are accepted too.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/golang/glog"
)

func main() {
	// glog reads its flags from the standard flag set, which cobra fills in.
	if err := flag.CommandLine.Parse(nil); err != nil {
		log.Exitf("Couldn't initialize logging flags, err = %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	log.Flush()
	if err != nil {
		stop()
		log.Exitf("statviz: %v", err)
	}
}
