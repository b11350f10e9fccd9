package tray

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/systray"
)

// Controller regenerates the menu bar icon shown in the preview
type Controller interface {
	GenerateMenuBarIcon(ctx context.Context) error
	MenuBarIconPath() string
}

// Config holds the system tray configuration
type Config struct {
	Controller Controller
	Logger     *slog.Logger
}

var globalConfig Config

// Run shows the generated menu bar icon in the system tray (blocking call).
// This must be called from the main goroutine.
func Run(cfg Config) {
	globalConfig = cfg
	systray.Run(onReady, onExit)
}

// refreshIcon loads the current tray icon from disk into the tray
func refreshIcon(cfg Config) {
	data, err := iconBytes(cfg.Controller.MenuBarIconPath(), runtime.GOOS)
	if err != nil {
		cfg.Logger.Error("Failed to load tray icon", "error", err)
		return
	}
	systray.SetIcon(data)
}

// onReady is called when the system tray is ready
func onReady() {
	cfg := globalConfig

	refreshIcon(cfg)
	systray.SetTooltip("icongen tray preview")

	cfg.Logger.Info("Tray preview ready", "icon", cfg.Controller.MenuBarIconPath())

	mRegenerate := systray.AddMenuItem("Regenerate", "Rebuild the menu bar icon from its master")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Close the preview")

	// Setup signal handling in the background
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		cfg.Logger.Info("Received shutdown signal, exiting")
		systray.Quit()
	}()

	// Handle menu item clicks in a goroutine
	go func() {
		for {
			select {
			case <-mRegenerate.ClickedCh:
				cfg.Logger.Info("Regenerate requested from system tray")
				if err := cfg.Controller.GenerateMenuBarIcon(context.Background()); err != nil {
					cfg.Logger.Error("Failed to regenerate menu bar icon", "error", err)
					continue
				}
				refreshIcon(cfg)

			case <-mQuit.ClickedCh:
				cfg.Logger.Info("Quit requested from system tray")
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is exiting
func onExit() {
	globalConfig.Logger.Info("Tray preview closed")
}
