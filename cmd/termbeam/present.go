package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/termbeam/internal/adapters/secondary/config"
	"github.com/fredcamaral/termbeam/internal/adapters/secondary/parser"
	"github.com/fredcamaral/termbeam/internal/adapters/secondary/render"
	"github.com/fredcamaral/termbeam/internal/adapters/secondary/sources"
	"github.com/fredcamaral/termbeam/internal/adapters/secondary/terminal"
	themeadapter "github.com/fredcamaral/termbeam/internal/adapters/secondary/theme"
	"github.com/fredcamaral/termbeam/internal/adapters/secondary/watcher"
	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
	"github.com/fredcamaral/termbeam/internal/domain/services"
)

var (
	// Present command flags
	playlistPath string
	dirPath      string
	bannerFlag   string
	skipBanner   bool
	titleFlag    string
	frameWidth   int
	themeName    string
	themePath    string
	instantMode  bool
	presenterOn  bool
	watchSources bool
)

// presentCmd represents the present command
var presentCmd = &cobra.Command{
	Use:   "present [scripts...]",
	Short: "Present slide scripts in the terminal",
	Long: `Assemble one or more slide scripts into a deck and present it
interactively. Sources come from explicit script arguments, a playlist
file, a directory, or any combination; duplicates are shown once at
their first position.

Example:
  termbeam present talk.txt
  termbeam present --playlist deck.list --theme amber
  termbeam present --dir presentations/ --instant --watch`,
	Args: cobra.ArbitraryArgs,
	RunE: runPresent,
}

func init() {
	rootCmd.AddCommand(presentCmd)

	presentCmd.Flags().StringVarP(&playlistPath, "playlist", "l", "", "Playlist file listing script paths, one per line")
	presentCmd.Flags().StringVarP(&dirPath, "dir", "d", "", "Directory whose files are appended as sources")
	presentCmd.Flags().StringVarP(&bannerFlag, "banner", "b", "", "ASCII banner file shown before the first slide")
	presentCmd.Flags().BoolVar(&skipBanner, "skip-banner", false, "Skip the banner stage")
	presentCmd.Flags().StringVar(&titleFlag, "title", "", "Presentation title shown in the header")
	presentCmd.Flags().IntVarP(&frameWidth, "frame-width", "f", 0, "Initial frame width in characters")
	presentCmd.Flags().StringVarP(&themeName, "theme", "t", "", "Built-in theme name (amber, arctic, neon)")
	presentCmd.Flags().StringVar(&themePath, "theme-path", "", "TOML theme file (overrides --theme)")
	presentCmd.Flags().BoolVar(&instantMode, "instant", false, "Disable the reveal animation")
	presentCmd.Flags().BoolVarP(&presenterOn, "presenter", "p", false, "Start with the presenter notes overlay enabled")
	presentCmd.Flags().BoolVarP(&watchSources, "watch", "w", false, "Rebuild the deck when a source file changes")
}

func runPresent(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLoggerWithLevel(verbose, entities.LogLevelInfo)

	defaults, err := config.Resolve(config.NewTOMLLoader(), nil)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("frame-width") {
		defaults.FrameWidth = frameWidth
	}
	if titleFlag != "" {
		defaults.Title = titleFlag
	}

	resolver := services.NewThemeResolver(themeadapter.NewFileLoader())
	theme, err := resolver.Resolve(themePath, themeName, defaults)
	if err != nil {
		return err
	}
	logger.Info("using theme %s", theme.Name)

	deckService := services.NewDeckService(sources.NewAssembler(), parser.NewScriptParser())
	deck, err := deckService.Build(args, playlistPath, dirPath)
	if err != nil {
		return err
	}
	logger.Info("assembled %d slides from %d sources", deck.SlideCount(), len(deck.Sources))

	bannerLines, bannerPath, err := loadBanner(bannerFlag, cmd.Flags().Changed("banner"), skipBanner, defaults)
	if err != nil {
		return err
	}

	cfg := &entities.PresentationConfig{
		FrameWidth: defaults.FrameWidth,
		Theme:      theme,
		Title:      defaults.Title,
		BannerPath: bannerPath,
		Instant:    instantMode,
		Presenter:  presenterOn,
	}

	console := terminal.NewConsole()
	if err := console.Start(); err != nil {
		return err
	}
	defer console.Stop()

	ctx := cmd.Context()
	go func() {
		<-ctx.Done()
		console.Inject(ports.KeyEvent{Kind: ports.KeyEscape})
	}()

	engine := render.NewEngine()
	clock := ports.NewRealTimeProvider()

	for {
		stopWatch, err := startWatcher(ctx, console, deck.Sources, logger)
		if err != nil {
			return err
		}

		presenter := services.NewPresenter(deck, cfg, engine, console, clock, bannerLines)
		runErr := presenter.Run()
		stopWatch()

		if !errors.Is(runErr, services.ErrReload) {
			return runErr
		}

		// The banner stage runs once per invocation, not per reload.
		bannerLines = nil
		cfg.BannerPath = ""

		rebuilt, err := deckService.Build(args, playlistPath, dirPath)
		if err != nil {
			logger.Warn("reload failed, keeping previous deck: %v", err)
			continue
		}
		deck = rebuilt
		logger.Info("deck reloaded: %d slides", deck.SlideCount())
	}
}

// loadBanner resolves the banner stage: an explicit --banner file must
// exist, while a missing default banner silently skips the stage.
func loadBanner(path string, explicit, skip bool, defaults entities.Defaults) ([]string, string, error) {
	if skip {
		return nil, "", nil
	}

	if !explicit {
		path = defaults.BannerPath
	}
	if path == "" {
		return nil, "", nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - user-chosen banner file
	if err != nil {
		if explicit {
			return nil, "", fmt.Errorf("reading banner %s: %w", path, err)
		}
		return nil, "", nil
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	return lines, path, nil
}

// startWatcher begins watching the deck sources when --watch is set.
// Changes inject a reload event into the console's key stream. The
// returned function stops the watcher; it is a no-op when watching is
// disabled.
func startWatcher(ctx context.Context, console *terminal.Console, paths []string, logger *Logger) (func(), error) {
	if !watchSources || len(paths) == 0 {
		return func() {}, nil
	}

	w := watcher.NewSourceWatcher(watcher.DefaultDebounce)
	events, err := w.Watch(ctx, paths)
	if err != nil {
		return nil, err
	}

	go func() {
		for changed := range events {
			logger.Info("source changed: %s", changed)
			console.Inject(ports.KeyEvent{Kind: ports.KeyReload})
		}
	}()

	return w.Stop, nil
}
