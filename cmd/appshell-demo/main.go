package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/appshell/internal/acquire"
	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/demo"
	"github.com/ytget/appshell/internal/shell"
	"github.com/ytget/appshell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.appshell.demo"
	AppName = "AppShell Demo"
	RepoURL = "https://github.com/ytget/appshell"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	startup, err := config.Load(AppID)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(startup.App.ID)

	store := config.NewStoreWithKey(myApp, startup.App.StateKey)
	myApp.Settings().SetTheme(ui.NewShellTheme(store.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(startup.UI.Width, startup.UI.Height))

	picker := acquire.DefaultPicker(startup.Files.Picker, myWindow, startup.Files.Extensions)

	driver, err := shell.New(demo.New, store, shell.Options{
		Identity: shell.Identity{
			Name:    AppName,
			Version: version,
			RepoURL: RepoURL,
			Icon:    theme.FyneLogo().Content(),
		},
		Args:     os.Args,
		Strategy: startup.Layout.Strategy,
		Picker:   picker,
		Window:   myWindow,
	})
	if err != nil {
		log.Fatalf("failed to start %s: %v", AppName, err)
	}

	localization := ui.NewLocalization()
	localization.SetLanguage(startup.UI.Language)

	// Create and setup UI
	root := ui.NewRootUI(myApp, myWindow, driver, store, localization, startup.UI.FrameInterval)
	myApp.Lifecycle().SetOnStopped(func() {
		root.Stop()
		driver.Shutdown()
	})
	root.Start()

	if err := config.Watch(AppID, func(s config.Startup) {
		fyne.Do(func() {
			root.Reconfigure(s)
		})
	}); err != nil {
		log.Printf("config: live reload disabled: %v", err)
	}

	// Show and run
	myWindow.SetMaster()
	myWindow.ShowAndRun()
}
