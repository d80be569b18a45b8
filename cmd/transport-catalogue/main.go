package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "transport-catalogue",
	Short: "Build, query and serve a bus network base",
	Long: `transport-catalogue ingests stops and buses from a JSON document,
stores them with a prebuilt router in a snapshot file and answers stop, bus,
route and map requests from that snapshot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadAppConfig(configPath); err != nil {
			return err
		}
		internal.InitLogging(config.Config.Logging.Level, config.Config.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(makeBaseCmd, processRequestsCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
