package cmd

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/cli/handlers"
	"github.com/xolan/punch/internal/osutil"
)

var (
	servePort int
	serveHost string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interval form over HTTP",
	Long: `Serve the interval form as a web page.

The server keeps no state: the page posts every field back with each
action, so any number of browsers can use it at once.

Examples:
  punch serve                      Listen on localhost:8080
  punch serve --port 9000          Listen on another port
  punch serve --host 0.0.0.0       Listen on all interfaces
  punch serve --clock 24h          Use 24 hour inputs`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		runServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
}

func runServe(ctx context.Context) {
	d := cli.GetDeps()

	var logOut io.Writer
	if verboseFlag || osutil.DebugEnabled() {
		logOut = d.Stderr
	}

	addr := net.JoinHostPort(serveHost, strconv.Itoa(servePort))
	handlers.Serve(ctx, d, addr, calcOptions(), logOut)
}
