// SPDX-License-Identifier: MIT
package dfs_test

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wmgraph/core"
)

// quietOpts prepends a discarding logger to opts.
func quietOpts(opts ...core.GraphOption) []core.GraphOption {
	return append([]core.GraphOption{core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
}

// quietGraph returns a graph whose not-found warnings are discarded.
func quietGraph(opts ...core.GraphOption) *core.Graph {
	return core.NewGraph(quietOpts(opts...)...)
}
