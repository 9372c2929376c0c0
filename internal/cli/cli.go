// seehuhn.de/go/hachure - hand-drawn outlines and hatch fills
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli implements the sketchy command-line interface.
//
// The commands are:
//   - hatch: print the hatch lines for a box or its inscribed circle
//   - draw: sketch the shapes of a scene file and write PDF, PNG or JSON
//
// All commands support --verbose (-v) for debug-level logging.  The
// logger is passed to the commands through their context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "devel" // semantic version, set by SetVersion
	commit  string    // git commit
	date    string    // build time
)

// SetVersion sets the version information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand returns the root of the sketchy command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "sketchy",
		Short:         "sketchy draws shapes in a hand-drawn style",
		Long:          `sketchy fills boxes and circles with hatch lines and renders scenes of simple shapes with a hand-drawn look.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sketchy %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newHatchCmd())
	root.AddCommand(newDrawCmd())

	return root
}

// Execute runs the sketchy command line with the given context.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetErr(os.Stderr)
	return root.ExecuteContext(ctx)
}
