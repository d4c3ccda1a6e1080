package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"lowpoint/internal/basin"
	"lowpoint/internal/config"
	"lowpoint/internal/heightmap"
	"lowpoint/internal/pkg/global"
	"lowpoint/internal/puzzle"
	"lowpoint/internal/render"
)

const defaultInput = "puzzle"

type analyzed struct {
	grid   *heightmap.Grid
	report puzzle.Report
	err    error
}

func main() {
	os.Exit(run())
}

func run() int {
	var configFilePath = pflag.String("config-file", "", "path to config file (default: built-in defaults)")
	var inputDir = pflag.String("input-dir", "", "directory holding <name>.input files (default input)")
	var workers = pflag.Int("workers", 0, "basin expansion workers per input (default GOMAXPROCS)")
	var top = pflag.Int("top", 0, "number of largest basins multiplied for part two (default 3)")
	var renderMap = pflag.Bool("render", false, "print each height map coloured by basin")
	var jsonOutput = pflag.Bool("json", false, "print reports as JSON, one per line")
	var logLevel = pflag.String("log-level", "", "trace, debug, info, warn or error (default info)")
	var version = pflag.Bool("version", false, "print version and exit")

	var profiling = pflag.Bool("profile", false, "enable profiling for CPU and Memory")
	var profileCpu = pflag.Bool("profile-cpu", false, "enable CPU profiling only")
	var profileMem = pflag.Bool("profile-memory", false, "enable Memory profiling only")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [name...]\n\nReads <input-dir>/<name>.input for each name, %q if none. Use - for stdin.\n\n",
			global.Name, defaultInput)
		pflag.PrintDefaults()
	}

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		pflag.Usage()
		fmt.Println("\nNote: extra options will override config file, but won't change config file.")
		return 0
	}

	pflag.Parse()

	if *version {
		fmt.Println(global.Banner())
		return 0
	}

	if *profileCpu || *profileMem || *profiling {
		var opt []func(*profile.Profile)
		if *profileCpu || *profiling {
			opt = append(opt, profile.CPUProfile)
		}
		if *profileMem || *profiling {
			opt = append(opt, profile.MemProfile)
		}
		defer profile.Start(opt...).Stop()
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:          os.Stderr,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})

	cfg, err := config.LoadFromFile(*configFilePath)
	if err != nil {
		log.Error().Err(errgo.Wrap(err, "failed to load config")).Send()
		return 1
	}

	flags := pflag.CommandLine
	if flags.Changed("input-dir") {
		cfg.App.InputDir = *inputDir
	}
	if flags.Changed("workers") {
		cfg.App.Workers = *workers
	}
	if flags.Changed("top") {
		cfg.App.TopBasins = *top
	}
	if flags.Changed("log-level") {
		cfg.App.LogLevel = *logLevel
	}
	if *renderMap {
		cfg.App.Render = true
	}
	if *jsonOutput {
		cfg.App.JSON = true
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid options")
		return 1
	}

	// Validate has already parsed both.
	zerolog.SetGlobalLevel(lo.Must(cfg.Level()))
	maxSize := lo.Must(cfg.MaxInputBytes())

	names := lo.Uniq(pflag.Args())
	if len(names) == 0 {
		names = []string{defaultInput}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := xsync.NewMapOf[string, analyzed]()
	opts := puzzle.Options{Workers: cfg.App.Workers, Top: cfg.App.TopBasins}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			path := puzzle.InputPath(cfg.App.InputDir, name)

			grid, err := puzzle.Load(ctx, path, maxSize)
			if err != nil {
				results.Store(name, analyzed{err: err})
				return nil
			}

			rep, err := puzzle.Analyze(ctx, name, grid, opts)
			if err != nil {
				return err
			}

			results.Store(name, analyzed{grid: grid, report: rep})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("analysis aborted")
		return 1
	}

	return output(names, results, cfg.App)
}

func output(names []string, results *xsync.MapOf[string, analyzed], app config.Application) int {
	code := 0
	opts := render.Options{NoColor: color.NoColor}
	enc := json.NewEncoder(os.Stdout)

	for _, name := range names {
		r, _ := results.Load(name)
		if r.err != nil {
			log.Error().Err(r.err).Str("input", name).Msg("failed to load input")
			code = 1
			continue
		}

		if app.JSON {
			if err := enc.Encode(r.report); err != nil {
				log.Error().Err(err).Msg("failed to write report")
				return 1
			}

			continue
		}

		if len(names) > 1 {
			fmt.Printf("%s:\n", name)
		}

		if app.Render {
			if err := render.Render(os.Stdout, r.grid, basin.Assign(r.grid, r.report.Basins), opts); err != nil {
				log.Error().Err(err).Msg("failed to render height map")
				return 1
			}
		}

		if err := r.report.WriteText(os.Stdout, opts); err != nil {
			log.Error().Err(err).Msg("failed to write report")
			return 1
		}
	}

	return code
}
