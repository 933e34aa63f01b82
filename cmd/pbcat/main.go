// pbcat: the system clipboard as a NUL-framed stream on stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := newRootCmd()
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pbcat",
		Short: "Mirror the clipboard over stdin/stdout",
		Long: `pbcat bridges the system clipboard with a NUL-framed text stream.

Text copied locally is written to stdout followed by a NUL byte. Every
NUL-terminated record read from stdin is placed on the clipboard. Run one
pbcat at each end of a pipe to share a clipboard, e.g.:

  mkfifo f; pbcat < f | ssh host pbcat > f

pbcat exits at end of input, or with status 1 when the clipboard or the
output stream fails.

Config file search order (first found wins):
  /etc/pbcat/pbcat.toml
  $HOME/.config/pbcat/pbcat.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → PBCAT_* env vars → flags`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(_ *cobra.Command, _ []string) error { return runBridge(v) },
	}

	f := cmd.Flags()
	f.Duration("poll-interval", defaultPollInterval, "how often to check the clipboard for changes")
	f.String("mode", "duplex", "direction: duplex|read (clipboard → stdout)|write (stdin → clipboard)")
	f.String("backend", "auto", "clipboard backend: auto|native|command")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pbcat %s\n", Version)
		},
	}
}
