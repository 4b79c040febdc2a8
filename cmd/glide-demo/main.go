package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
	"github.com/BrandonKowalski/glide/pkg/glide/evdev"
	"github.com/BrandonKowalski/glide/pkg/glide/sdlhost"
)

var (
	configFile string
	logLevel   string
	logFile    string
	debug      bool
	pageSource string
	evdevPath  string
	fontPath   string
	lang       string
	width      int32
	height     int32
	fullscreen bool
)

func init() {
	// SDL must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "glide-demo",
		Short:        "smooth scrolling demo page",
		SilenceUsage: true,
		RunE:         runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "controller config file (toml); defaults to $"+constants.ConfigPathEnvVar)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "application log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log controller internals")

	rootCmd.Flags().StringVar(&pageSource, "page", "", "page file (toml) or https URL; defaults to the bundled page")
	rootCmd.Flags().StringVar(&evdevPath, "evdev", "", "also read input from this evdev device path or name")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF font path")
	rootCmd.Flags().StringVar(&lang, "lang", "", "footer language (e.g. en, de, es); defaults to $LANG")
	rootCmd.Flags().Int32Var(&width, "width", 0, "window width")
	rootCmd.Flags().Int32Var(&height, "height", 0, "window height")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "fullscreen at desktop resolution")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective controller config",
		RunE:  printConfig,
	}

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list easing curves",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range glide.CurveNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	devicesCmd := &cobra.Command{
		Use:   "devices",
		Short: "list evdev input devices",
		RunE:  listDevices,
	}

	rootCmd.AddCommand(configCmd, curvesCmd, devicesCmd)
	return rootCmd
}

func setupLogging() {
	glide.Init(glide.Options{
		LogPath:  logFile,
		LogLevel: logLevel,
		Debug:    debug,
	})
}

// loadConfig reads --config, then $GLIDE_CONFIG, and falls back to the
// defaults.
func loadConfig() (glide.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	if path == "" {
		return glide.DefaultConfig(), nil
	}
	return glide.LoadConfig(path)
}

func loadPage(ctx context.Context, source string) (sdlhost.Page, error) {
	switch {
	case source == "":
		return sdlhost.DefaultPage(), nil
	case strings.HasPrefix(source, "https://"), strings.HasPrefix(source, "http://"):
		return fetchPage(ctx, source)
	default:
		return sdlhost.LoadPage(source)
	}
}

func fetchPage(ctx context.Context, url string) (sdlhost.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return sdlhost.Page{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return sdlhost.Page{}, glide.NewInfrastructureError("fetch_page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sdlhost.Page{}, glide.NewInfrastructureError("fetch_page", fmt.Errorf("%s: %s", url, resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return sdlhost.Page{}, glide.NewInfrastructureError("fetch_page", err)
	}
	return sdlhost.ParsePage(data)
}

func runDemo(cmd *cobra.Command, args []string) error {
	setupLogging()
	defer glide.Close()
	logger := glide.GetLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	page, err := loadPage(ctx, pageSource)
	if err != nil {
		return err
	}

	theme := sdlhost.DefaultTheme()
	theme.FontPath = fontPath

	host, err := sdlhost.New(sdlhost.Options{
		Page:     page,
		Config:   cfg,
		Theme:    theme,
		Language: lang,
		Window: sdlhost.WindowOptions{
			Width:             width,
			Height:            height,
			Resizable:         true,
			FullscreenDesktop: fullscreen,
		},
	})
	if err != nil {
		return err
	}
	defer host.Close()

	if evdevPath != "" {
		source, err := openEvdev(evdevPath, float64(host.ViewportHeight()))
		if err != nil {
			return err
		}
		source.Start(ctx)
		defer func() {
			if err := source.Close(); err != nil {
				logger.Error("Input device stopped with error", "error", err)
			}
		}()
		host.AddFeed(source)
	}

	logger.Info("Demo running", "sections", len(page.Sections), "tween_curve", cfg.TweenCurve)
	return host.Run(ctx)
}

// openEvdev accepts either a device path or part of a device name.
func openEvdev(pathOrName string, viewportHeight float64) (*evdev.Source, error) {
	path := pathOrName
	if !strings.HasPrefix(path, "/") {
		found, err := evdev.Find(pathOrName)
		if err != nil {
			return nil, err
		}
		path = found
	}
	return evdev.Open(path, viewportHeight)
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}

func listDevices(cmd *cobra.Command, args []string) error {
	devices, err := evdev.Devices()
	if err != nil {
		return err
	}
	for _, d := range devices {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Path, d.Name)
	}
	return nil
}
