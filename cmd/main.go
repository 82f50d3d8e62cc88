package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/go-tooling/pkg/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"

	"github.com/SeraphWedd/novage-spatial/featureflag"
	"github.com/SeraphWedd/novage-spatial/geometry"
	spatialhttp "github.com/SeraphWedd/novage-spatial/http"
	"github.com/SeraphWedd/novage-spatial/spatial"
)

var (
	// The novaspatial version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "novaspatial_info",
		Help:        "Novaspatial stress driver information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

// Keeps the cli package from generating garbled command-line options
// when the binary is built with obfuscation.
var _ = reflect.TypeOf(config{})

type config struct {
	AdminAddr      string        `cli:""        env:"NOVASPATIAL_ADMIN_ADDR"      help:"Admin listening address."`
	LogLevel       string        `cli:""        env:"NOVASPATIAL_LOG_LEVEL"       help:"Log level (debug|info|warning|error)."`
	LogIndent      bool          `cli:""        env:"NOVASPATIAL_LOG_INDENT"      help:"Indent logs."`
	WorldSize      float64       `cli:""        env:"NOVASPATIAL_WORLD_SIZE"      help:"Initial world edge length."`
	Entities       int           `cli:""        env:"NOVASPATIAL_ENTITIES"        help:"Number of simulated entities."`
	FrameDuration  time.Duration `cli:",hidden" env:"NOVASPATIAL_FRAME_DURATION"  help:"The duration of a simulation frame."`
	ReportInterval time.Duration `cli:",hidden" env:"NOVASPATIAL_REPORT_INTERVAL" help:"The duration between each summary log."`
	MaxObjects     int           `cli:",hidden" env:"NOVASPATIAL_MAX_OBJECTS"     help:"Per-node object threshold before subdivision."`
	MaxDepth       int           `cli:",hidden" env:"NOVASPATIAL_MAX_DEPTH"       help:"Quadtree depth cap."`
	CellSize       float64       `cli:",hidden" env:"NOVASPATIAL_CELL_SIZE"       help:"Hash grid cell size."`
	QueryRadius    float64       `cli:",hidden" env:"NOVASPATIAL_QUERY_RADIUS"    help:"Radius of the per-frame probe query."`
	Seed           int64         `cli:",hidden" env:"NOVASPATIAL_SEED"            help:"Noise seed for entity motion."`
	FeatureFlags   []string      `cli:",hidden" env:"NOVASPATIAL_FEATURE_FLAGS"   help:"Comma separated feature flags."`
	Version        bool          `cli:""        env:"-"                           help:"Show version."`
	Help           bool          `cli:""        env:"-"                           help:"Show help."`
}

func main() {
	conf := config{
		AdminAddr:      ":18290",
		LogLevel:       logs.InfoLevel.String(),
		WorldSize:      1000,
		Entities:       4096,
		FrameDuration:  time.Millisecond * 15,
		ReportInterval: time.Second * 10,
		MaxObjects:     spatial.DefaultMaxObjects,
		MaxDepth:       spatial.DefaultMaxDepth,
		CellSize:       spatial.DefaultCellSize,
		QueryRadius:    25,
		Seed:           42,
	}

	// set the information gauge to 1, useful for SUM query
	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Runs a headless stress driver against the novage spatial index.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	flags := featureflag.New(conf.FeatureFlags)
	runID := uuid.NewString()

	worldBounds := geometry.AABB2DFromCenterSize(
		geometry.Vec2f{},
		geometry.NewVec2f(float32(conf.WorldSize), float32(conf.WorldSize)),
	)

	var index spatial.Partition = spatial.NewManager(worldBounds,
		spatial.WithName("stress-"+runID),
		spatial.WithMaxObjects(conf.MaxObjects),
		spatial.WithMaxDepth(conf.MaxDepth),
		spatial.WithAutoExpand(!flags.IsSet(featureflag.FlagDisableAutoExpand)),
	)
	flags.IfSet(featureflag.FlagUseHashGrid, func() {
		index = spatial.NewHashGrid(float32(conf.CellSize))
	})

	sim := newSimulation(simulationOptions{
		Index:          index,
		Flags:          flags,
		WorldBounds:    worldBounds,
		Entities:       conf.Entities,
		FrameDuration:  conf.FrameDuration,
		ReportInterval: conf.ReportInterval,
		QueryRadius:    float32(conf.QueryRadius),
		Seed:           conf.Seed,
	})

	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/health", spatialhttp.HandleHealthCheck)
	admin.Handle("/ready", spatialhttp.HandleWithCORS(spatialhttp.HandleReadyCheck(func() bool {
		return true
	})))
	admin.Handle("/version", spatialhttp.HandleWithCORS(spatialhttp.HandleVersion(version)))
	admin.Handle("/debug/spatial", spatialhttp.HandleWithCORS(spatialhttp.HandleDebugInfo(sim.debugInfo)))
	admin.HandleFunc("/debug/pprof/", pprof.Index)
	admin.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	admin.HandleFunc("/debug/pprof/profile", pprof.Profile)
	admin.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	admin.HandleFunc("/debug/pprof/trace", pprof.Trace)
	admin.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	admin.Handle("/debug/pprof/heap", pprof.Handler("heap"))

	go sim.run(ctx)

	logs.WithTag("version", version).
		WithTag("run_id", runID).
		WithTag("log_level", conf.LogLevel).
		WithTag("entities", conf.Entities).
		WithTag("admin_addr", conf.AdminAddr).
		Info("starting novaspatial stress driver")

	spatialhttp.ListenAndServe(ctx,
		&http.Server{
			Addr:    conf.AdminAddr,
			Handler: metrics.HTTPHandler(&admin, spatialhttp.MetricsPathFormatter),
		},
	)
}
