package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/roadsim/osm2net/internal/export"
	"github.com/roadsim/osm2net/internal/graph"
	"github.com/roadsim/osm2net/internal/logger"
	"github.com/roadsim/osm2net/internal/metrics"
	"github.com/roadsim/osm2net/internal/nodeindex"
	"github.com/roadsim/osm2net/internal/osmread"
	"github.com/roadsim/osm2net/internal/profile"
)

var (
	profileFile   string
	flatNodesFile string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.osm> <output.json> [network-name]",
	Short: "Convert an OSM XML extract into a simulator road network",
	Long: `Convert an OpenStreetMap XML file into a routable road network document.

Only drivable highway types are imported (configurable with --profile).
Two-way streets become two independent directional roads, and every road
carries a uniform outgoing-connection probability distribution per lane.

Example:
  osm2net convert data/osm/schwabing.osm data/maps/munich.json "Munich Schwabing"`,
	Args: cobra.RangeArgs(2, 3),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&profileFile, "profile", "p", "", "Road profile YAML overriding the built-in highway tables")
	convertCmd.Flags().StringVar(&flatNodesFile, "flat-nodes", "", "Memory-mapped node coordinate file (faster for large extracts)")
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg.InputFile = args[0]
	cfg.OutputFile = args[1]
	if len(args) >= 3 {
		cfg.NetworkName = args[2]
	}
	cfg.ProfileFile = profileFile
	cfg.FlatNodesFile = flatNodesFile

	log := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		exitWithError("invalid configuration", err)
	}

	prof := profile.Default()
	if cfg.ProfileFile != "" {
		var err error
		prof, err = profile.Load(cfg.ProfileFile)
		if err != nil {
			exitWithError("failed to load road profile", err)
		}
	}

	var store nodeindex.Store
	if cfg.FlatNodesFile != "" {
		mmapStore, err := nodeindex.NewMmapStore(cfg.FlatNodesFile)
		if err != nil {
			exitWithError("failed to create flat nodes store", err)
		}
		store = mmapStore
	} else {
		store = nodeindex.NewMemoryStore()
	}
	defer store.Close()

	log.Info("Starting conversion",
		zap.String("input", cfg.InputFile),
		zap.String("output", cfg.OutputFile),
		zap.String("network", cfg.NetworkName),
	)

	start := time.Now()

	// System metrics sampling for the duration of the run
	metricsCtx, stopMetrics := context.WithCancel(context.Background())
	defer stopMetrics()
	go metrics.NewCollector(cfg.MetricsInterval, log).Start(metricsCtx)

	result, err := osmread.ReadFile(context.Background(), cfg.InputFile, prof, store)
	if err != nil {
		exitWithError("failed to read OSM file", err)
	}
	log.Info("Parsed OSM file",
		zap.Int64("nodes", result.NodesRead),
		zap.Int64("ways", result.WaysRead),
	)

	assembler := graph.NewAssembler(store, prof, log)
	net := assembler.Assemble(result.Ways, graph.Stats{
		NodesRead: result.NodesRead,
		WaysRead:  result.WaysRead,
	})

	if err := export.WriteFile(cfg.OutputFile, net, cfg.NetworkName); err != nil {
		exitWithError("failed to write network document", err)
	}

	log.Info("Conversion complete",
		zap.String("output", cfg.OutputFile),
		zap.Int("roads", len(net.Roads)),
		zap.Int64("intersections", net.Stats.IntersectionsFound),
		zap.Int64("segments", net.Stats.SegmentsCreated),
		zap.Int64("connections", net.Stats.ConnectionsCreated),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)),
	)
}
