// Command selfplay is the one concrete host this module ships: a cobra CLI
// driving batches of games purely through the internal/mahjong/engine
// control interface (new/reset/step/encode/legal_actions/scores/mjai_log),
// the way the teacher's per-node main.go files drive their app.Run through
// common/config and common/log, generalized from a long-lived server
// process into a bounded self-play batch runner.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mahjongcore/common/config"
	"mahjongcore/common/log"
	"mahjongcore/common/metrics"
)

var version = "0.1.0-dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "selfplay drives self-play batches against the mahjong engine",
	Long:  `selfplay drives self-play batches against the mahjong engine core`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (optional; env vars override the keys it sets)")
	rootCmd.AddCommand(runCmd, replayCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the selfplay binary version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("selfplay command failed: %v", err)
		os.Exit(1)
	}
}

func loadConfig() config.SelfplayConfig {
	cfg, err := config.LoadSelfplayConfig(configFile)
	if err != nil {
		log.Fatal("loading config: %v", err)
	}
	log.Init("selfplay", cfg.LogLevel)
	return cfg
}

func startMetrics(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Info("serving runtime stats at http://%s/debug/statsviz/", addr)
		if err := metrics.Serve(addr); err != nil {
			log.Error("metrics server stopped: %v", err)
		}
	}()
}
