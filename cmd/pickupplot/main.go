package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/pickupplot/pickupplot/cmd"
	"github.com/pickupplot/pickupplot/internal/logging"
	"github.com/pickupplot/pickupplot/oto"
	"github.com/pickupplot/pickupplot/plotter"
	"github.com/pickupplot/pickupplot/plotter/gioui"
	"github.com/pickupplot/pickupplot/version"
	"go.uber.org/zap"
)

var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
var logLevel = flag.String("log-level", "", "debug, info, warn or error; overrides the preferences")
var logFile = flag.String("log-file", "", "also write the log to `file`")
var development = flag.Bool("dev", false, "human readable log output")
var noAudio = flag.Bool("no-audio", false, "do not open the audio device")

const closeTimeout = 3 * time.Second

func main() {
	flag.Parse()
	preferences, prefWarn := gioui.LoadPreferences()
	level := preferences.Log.Level
	if isFlagPassed("log-level") {
		level = *logLevel
	}
	file := preferences.Log.File
	if isFlagPassed("log-file") {
		file = *logFile
	}
	logger, err := logging.New(logging.WithLevel(level), logging.WithFile(file), logging.WithDevelopment(*development),
		logging.WithFields(map[string]any{"app": "pickupplot", "version": version.VersionOrHash}))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	broker := plotter.NewBroker()
	midiContext := cmd.NewMidiContext(broker)
	opts := []plotter.Option{
		plotter.WithLogger(logger),
		plotter.WithMIDI(midiContext),
		plotter.WithAuditionSettings(preferences.Audition.Settings()),
	}
	var audio *oto.Context
	var audioErr error
	if !*noAudio {
		if audio, audioErr = oto.NewContext(); audioErr == nil {
			opts = append(opts, plotter.WithAudio(audio))
		}
	}
	guitar, guitarWarn := preferences.Guitar.NewGuitar()
	model := plotter.NewModel(broker, guitar, plotter.DefaultLayoutConfig(), opts...)
	model.Warn("ignoring user preferences", prefWarn)
	model.Warn("ignoring preference values", guitarWarn)
	model.Warn("audition disabled", audioErr)

	prefix := preferences.MIDI.InputPrefix
	if isFlagPassed("midi-input") {
		prefix = *defaultMidiInput
	}
	if prefix != "" {
		if err := model.OpenMIDIInput(prefix); err != nil {
			logger.Warn("cannot open MIDI input", zap.String("prefix", prefix), zap.Error(err))
		}
	}

	plotterUi := gioui.NewPlotter(model, preferences)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		if !broker.CloseAndWait(closeTimeout) {
			logger.Warn("window did not close in time")
			logger.Sync()
			os.Exit(1)
		}
	}()
	go func() {
		plotterUi.Main()
		model.Close()
		if audio != nil {
			if err := audio.Close(); err != nil {
				logger.Error("closing audio", zap.Error(err))
			}
		}
		logger.Sync()
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
