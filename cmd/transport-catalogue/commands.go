package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
	"github.com/theoremus-urban-solutions/transport-catalogue/server"
)

func options() requests.Options {
	routing := config.Config.Routing
	return requests.Options{
		Routing:      &routing,
		SnapshotFile: config.Config.Snapshot.File,
	}
}

var makeBaseCmd = &cobra.Command{
	Use:   "make_base",
	Short: "Read base requests from stdin and write a snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := requests.MakeBase(cmd.InOrStdin(), options())
		if err != nil {
			return err
		}
		slog.Info("base created", "file", file)
		return nil
	},
}

var processRequestsCmd = &cobra.Command{
	Use:   "process_requests",
	Short: "Answer stat requests from stdin against a snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return requests.ProcessRequests(cmd.InOrStdin(), cmd.OutOrStdout(), options())
	},
}

var (
	serveSnapshot string
	servePort     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a snapshot over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options()
		file := opts.SnapshotFile
		if serveSnapshot != "" {
			file = serveSnapshot
		}
		t, err := requests.Load(file, opts.Routing)
		if err != nil {
			return err
		}
		if _, err := t.EnsureRouter(); err != nil {
			return err
		}

		cfg := config.Config.Server
		if servePort != 0 {
			cfg.Port = servePort
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(t, cfg).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveSnapshot, "snapshot", "s", "", "snapshot file (defaults to snapshot.file from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (defaults to server.port from config)")
}
