package main

import (
	"fmt"
	"net/http"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/config"
	"github.com/vidscope/vidscope-desktop/internal/feed"
	"github.com/vidscope/vidscope-desktop/internal/lists"
	"github.com/vidscope/vidscope-desktop/internal/model"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
	"github.com/vidscope/vidscope-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vidscope.vidscope-desktop"
	AppName = "Vidscope"
)

func main() {
	// Log version information
	fmt.Printf("Vidscope v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	session := config.NewSession()
	if token := os.Getenv("VIDSCOPE_TOKEN"); token != "" {
		session.Begin(token, &model.User{
			ID:       os.Getenv("VIDSCOPE_USER_ID"),
			Username: os.Getenv("VIDSCOPE_USERNAME"),
		})
	}

	backend := api.NewClient(settings.GetAPIBaseURL(), session.Token)
	resolver := thumbs.NewResolver(&http.Client{Timeout: thumbs.ProbeTimeout})
	feedCtrl := feed.NewController(backend, session.UserID)
	listSvc := lists.NewService(backend, session.UserID)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, backend, session, feedCtrl, listSvc, resolver)

	// Show and run
	myWindow.ShowAndRun()
}
