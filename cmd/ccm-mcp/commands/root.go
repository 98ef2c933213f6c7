package commands

import (
	"ccm-mcp/internal/config"
	"ccm-mcp/internal/logging"
	"ccm-mcp/internal/market"
	"ccm-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	snapshot *market.Snapshot
)

var rootCmd = &cobra.Command{
	Use:   "ccm-mcp",
	Short: "CCM-MCP is a carbon-credit market analytics MCP Server",
	Long: `A specialized MCP Server that loads a carbon-credit market dataset (projects,
credits, country boundaries), derives and joins it once per process, and serves
exploratory analytics (histograms, price summaries, market timeline, choropleth
data, k-means segmentation, emissions calculator) as MCP tools.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Run the load-and-derive pipeline once. A missing projects or
		// credits file is fatal: no partial dashboard.
		snapshot, err = market.NewLoader().Load(cfg.Sources)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load market dataset")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("CCM-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg, snapshot)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Server loop failed")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
