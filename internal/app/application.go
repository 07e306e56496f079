package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"hdfm/internal/nrsc5"
	"hdfm/internal/ui"
)

// runDuration is how long the front end idles while the decoder runs.
// The decoder's fate after the window elapses is the platform's.
const runDuration = 100 * time.Second

// Application wires the argument validator to the decoder launcher.
type Application struct {
	config Config
	logger *logrus.Logger
	tuner  *nrsc5.TunerConfig
	ui     *ui.UI
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	tuner := nrsc5.NewTunerConfig(config.DumpDir)

	return &Application{
		config: config,
		logger: logger,
		tuner:  tuner,
		ui:     ui.New(tuner, config.SavesDir),
	}
}

// Run validates the raw command line tokens, launches the decoder and
// idles while it runs. The returned value is the process exit code.
func (app *Application) Run(tokens []string) int {
	if rc := app.ui.Process(tokens); rc != ui.Success {
		return rc
	}

	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting HDFM front end")

	app.logger.WithFields(logrus.Fields{
		"channel":  app.tuner.Channel,
		"ppm":      app.tuner.PPM,
		"log":      app.tuner.LogLevel,
		"freq":     app.tuner.Freq,
		"dump_dir": app.tuner.DumpDir,
		"art":      app.ui.Art,
		"save_dir": app.ui.SaveDir,
		"save":     app.ui.DoSave,
	}).Info("Starting nrsc5 decoder")

	proc, err := nrsc5.Launch(app.tuner.FormatCmd(), app.logger)
	if err != nil {
		app.logger.WithError(err).Error("Failed to launch decoder")
		return ui.Halt
	}

	app.idle(proc)
	return ui.Success
}

// idle keeps the parent alive for the run window while the decoder
// runs, stopping the child early on SIGINT/SIGTERM.
func (app *Application) idle(proc *nrsc5.Process) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-time.After(runDuration):
		app.logger.Info("Run window elapsed")
	case sig := <-sigChan:
		app.logger.WithField("signal", sig.String()).Info("Received shutdown signal")
		if err := proc.Stop(); err != nil {
			app.logger.WithError(err).Warn("Decoder did not stop cleanly")
		}
	}
}
