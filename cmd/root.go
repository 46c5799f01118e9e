package cmd

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/config"
	"github.com/ytget/movie-explorer/internal/logging"
	"github.com/ytget/movie-explorer/internal/platform"
	"github.com/ytget/movie-explorer/internal/poster"
	"github.com/ytget/movie-explorer/internal/tmdb"
	"github.com/ytget/movie-explorer/internal/ui"
)

const (
	AppID   = "com.ytget.movie-explorer"
	AppName = "Movie Explorer"
)

var (
	cfgFile   string
	logLevel  string
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer
	tmdbAPI   *tmdb.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "movie-explorer",
	Short: "A desktop movie browser for The Movie Database",
	Long: `movie-explorer is a desktop application for browsing movies from
The Movie Database (TMDB): latest and popular listings, title search, genre
filtering, trailers, details and a session favorites list.`,
	PreRunE: initializeApp,
	RunE:    runApp,
}

// SetVersion sets the version information reported by the version command
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and creates the TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	// A desktop launch has no visible stderr, so default to the per-user log file
	if cfg.Logging.File == "" {
		if path, err := platform.DefaultLogFile(); err == nil {
			cfg.Logging.File = path
		}
	}

	logger, logCloser = logging.Setup(cfg.Logging)

	tmdbAPI, err = tmdb.NewClient(cfg.TMDB.APIKey, logger,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithTimeout(cfg.TMDB.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// runApp builds the window and blocks until it is closed
func runApp(cmd *cobra.Command, args []string) error {
	defer logCloser.Close()

	logger.Info().
		Str("version", version).
		Str("language", cfg.TMDB.Language).
		Str("log_file", cfg.Logging.File).
		Msg("Movie Explorer starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewExplorerTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug().Err(err).Msg("App icon not found, using default")
	}

	settings := config.NewSettings(myApp)
	posters := poster.NewLoader(cfg.TMDB.ImageBaseURL, logger, poster.WithTimeout(cfg.TMDB.Timeout))

	rootUI := ui.NewRootUI(myWindow, myApp, settings, logger)
	controller := browser.NewController(tmdbAPI, posters, rootUI, platform.Opener{}, logger,
		browser.WithMaxParallelPosters(settings.GetMaxParallelPosters()),
	)
	rootUI.SetBrowser(controller)

	myApp.Lifecycle().SetOnStarted(rootUI.Start)
	myWindow.SetMaster()
	myWindow.ShowAndRun()

	rootUI.Stop()
	logger.Info().Msg("Movie Explorer stopped")
	return nil
}
