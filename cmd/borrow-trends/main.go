package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"borrow-trends/internal/charts"
	"borrow-trends/internal/config"
	"borrow-trends/internal/controllers"
	"borrow-trends/internal/dataprep"
	"borrow-trends/internal/export"
	"borrow-trends/internal/logger"
	"borrow-trends/internal/models"
	"borrow-trends/internal/session"
	"borrow-trends/internal/shutdown"
	"borrow-trends/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.borrowtrends.viewer"
	AppVersion = "1.0.0"

	windowWidth  = 900
	windowHeight = 700
)

// Application wires configuration, data preparation and the chart viewer.
type Application struct {
	cfg     config.Config
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager

	records  models.RecordSet
	saved    bool
	exitCode int
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg, logger.NewConsoleLogger(cfg.LogLevel))
	os.Exit(application.Run())
}

// NewApplication creates the window and the shutdown manager. Data is loaded in Run.
func NewApplication(cfg config.Config, appLogger logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    views.WindowTitle,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.WindowTitle)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetMaster()
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"input":      cfg.InputPath,
		"output":     cfg.OutputPath,
		"export_dir": cfg.ExportDir,
		"strict":     cfg.StrictCategories,
		"go_version": runtime.Version(),
	})

	return &Application{
		cfg:      cfg,
		fyneApp:  fyneApp,
		window:   window,
		logger:   appLogger,
		view:     views.NewMainView(window),
		shutdown: shutdown.NewManager(appLogger),
	}
}

// Run prepares the data, shows the viewer and blocks until the window closes.
// It returns the process exit status.
func (a *Application) Run() int {
	pipeline := dataprep.NewPipeline(a.logger, dataprep.RecodeOptions{Strict: a.cfg.StrictCategories})

	result, err := pipeline.Prepare(a.cfg.InputPath)
	if err != nil {
		a.runFatal(err)
		return a.exitCode
	}

	a.records = result.Records
	artifacts := charts.NewGenerator(a.logger).Generate(result.Records, result.Correlation)
	deck := session.NewDeck(artifacts)

	a.controller = controllers.NewMainController(
		deck,
		export.NewSaver(a.cfg.ExportDir, a.logger),
		controllers.DisplayPreview,
		a.logger,
	)
	a.controller.SetCloseCallback(a.saveProcessed)
	a.controller.SetMainView(a.view)

	a.view.SetDataInfo(result.Records.Len(), len(result.Records.Columns()))
	a.window.SetCloseIntercept(a.controller.Close)

	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.controller.Close)
	}))
	a.shutdown.Listen()

	a.controller.ShowIndex(0)
	a.view.Show()
	a.fyneApp.Run()

	// The window can go away without the Close button, e.g. via the OS.
	if !a.saved {
		a.saveProcessed()
	}
	a.logger.Info("Application", "terminated", map[string]interface{}{
		"exit_code": a.exitCode,
	})
	return a.exitCode
}

// runFatal shows err and exits with status 1 once the dialog is dismissed.
func (a *Application) runFatal(err error) {
	a.exitCode = 1

	a.window.SetCloseIntercept(a.fyneApp.Quit)
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Listen()

	a.view.ShowFatal(fmt.Errorf("could not prepare %s: %w", a.cfg.InputPath, err), a.fyneApp.Quit)
	a.view.Show()
	a.fyneApp.Run()
}

// saveProcessed writes the cleaned record set when the session ends.
func (a *Application) saveProcessed() {
	a.saved = true
	if err := writeProcessed(a.logger, a.cfg.OutputPath, a.records); err != nil {
		a.exitCode = 1
	}
}

func writeProcessed(log logger.Logger, path string, rs models.RecordSet) error {
	if err := dataprep.SaveCSV(path, rs); err != nil {
		log.Error("Application", err, map[string]interface{}{"path": path})
		return err
	}

	log.Info("Application", "processed data saved", map[string]interface{}{
		"path": path,
		"rows": rs.Len(),
	})
	return nil
}
