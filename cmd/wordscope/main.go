package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordscope/wordscope/internal/app"
	"github.com/wordscope/wordscope/internal/logging"
	"github.com/wordscope/wordscope/internal/server"
)

func main() {
	var (
		configPath    string
		listen        string
		userAgent     string
		fetchTimeout  time.Duration
		maxBody       int64
		stopwordsPath string
		fontPath      string
		cloudWidth    int
		cloudHeight   int
		logLevel      string
		logDir        string
		verbose       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&listen, "listen", app.DefaultListenAddr, "HTTP listen address")
	flag.StringVar(&userAgent, "fetch.ua", "", "Override the browser-like User-Agent used for page fetches")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Per-fetch timeout (0 disables)")
	flag.Int64Var(&maxBody, "fetch.maxBody", app.DefaultMaxBodyBytes, "Maximum response body size in bytes (0 = unlimited)")
	flag.StringVar(&stopwordsPath, "stopwords", app.DefaultStopwordsPath, "Path to stopword list, one word per line")
	flag.StringVar(&fontPath, "font", app.DefaultFontPath, "Path to TTF font for word cloud and PDF rendering")
	flag.IntVar(&cloudWidth, "cloud.width", 0, "Word cloud width in pixels (0 = default 800)")
	flag.IntVar(&cloudHeight, "cloud.height", 0, "Word cloud height in pixels (0 = default 400)")
	flag.StringVar(&logLevel, "log.level", "", "Log level (trace..panic; default info)")
	flag.StringVar(&logDir, "log.dir", "", "Directory for rotating log files (empty disables)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	flagCfg := app.Config{
		ListenAddr:    listen,
		UserAgent:     userAgent,
		FetchTimeout:  fetchTimeout,
		MaxBodyBytes:  maxBody,
		StopwordsPath: stopwordsPath,
		FontPath:      fontPath,
		CloudWidth:    cloudWidth,
		CloudHeight:   cloudHeight,
		LogLevel:      logLevel,
		LogDir:        logDir,
		Verbose:       verbose,
	}
	cfg, err := resolveConfig(flagCfg, explicit, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config %s: %v\n", configPath, err)
		os.Exit(1)
	}

	if err := logging.Setup(logging.Config{Level: cfg.LogLevel, Dir: cfg.LogDir, Verbose: cfg.Verbose}); err != nil {
		fmt.Fprintf(os.Stderr, "logging setup: %v\n", err)
		os.Exit(1)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// resolveConfig layers the configuration sources: flags beat env, env beats
// file. File config fills fields still at their flag defaults; env then
// overrides; finally the values the operator passed on the command line are
// reasserted.
func resolveConfig(flagCfg app.Config, explicit map[string]bool, configPath string) (app.Config, error) {
	cfg := flagCfg
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)
	restoreExplicitFlags(&cfg, flagCfg, explicit)
	return cfg, nil
}

func restoreExplicitFlags(cfg *app.Config, flags app.Config, explicit map[string]bool) {
	if explicit["listen"] {
		cfg.ListenAddr = flags.ListenAddr
	}
	if explicit["fetch.ua"] {
		cfg.UserAgent = flags.UserAgent
	}
	if explicit["fetch.timeout"] {
		cfg.FetchTimeout = flags.FetchTimeout
	}
	if explicit["fetch.maxBody"] {
		cfg.MaxBodyBytes = flags.MaxBodyBytes
	}
	if explicit["stopwords"] {
		cfg.StopwordsPath = flags.StopwordsPath
	}
	if explicit["font"] {
		cfg.FontPath = flags.FontPath
	}
	if explicit["cloud.width"] {
		cfg.CloudWidth = flags.CloudWidth
	}
	if explicit["cloud.height"] {
		cfg.CloudHeight = flags.CloudHeight
	}
	if explicit["log.level"] {
		cfg.LogLevel = flags.LogLevel
	}
	if explicit["log.dir"] {
		cfg.LogDir = flags.LogDir
	}
	if explicit["v"] {
		cfg.Verbose = flags.Verbose
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	srv := server.New(a)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(cfg.ListenAddr) }()
	log.Info().Str("addr", cfg.ListenAddr).Msg("wordscope listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		return srv.Shutdown()
	}
}
