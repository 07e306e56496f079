package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"hdfm/internal/nrsc5"
)

// Exit codes returned by Process.
const (
	Success = 0
	Halt    = 1
)

const usage = `Usage:  [OPTIONS]  frequency

Option        Meaning
 -h, --help    Show this message
 -c <channel>  HDFM channel, for stations with subchannels (default = 1)
 -p <ppm>      PPM error correction (default = 0)
 -s <dir>      Directory to save weather and traffic images to (default = none)
 -l <1-3>      Log level output from nrsc5 (default = 3, only debug info)
 -a <null>     Display album/station art
`

// Validation errors. The message text is printed to the user verbatim
// (prefixed with "Error: ") and is part of the CLI contract.
var (
	ErrNoFrequency      = errors.New("No frequency specified")
	ErrInvalidFrequency = errors.New("Invalid frequency")
	ErrFrequencyRange   = errors.New("Frequency out of range (88.0 - 108.0)")
	ErrInvalidChannel   = errors.New("Invalid channel (0 - 3)")
	ErrInvalidPPM       = errors.New("Invalid PPM argument")
	ErrInvalidLogLevel  = errors.New("Invalid log level (1 - 3)")
	ErrInvalidDirectory = errors.New("Invalid directory")
)

// UI validates raw command line tokens and fills in the tuner
// configuration field by field as they are scanned.
type UI struct {
	tuner *nrsc5.TunerConfig

	// Art reports whether album/station art should be displayed.
	Art bool
	// SaveDir is where weather and traffic images are saved when DoSave
	// is set. Neither field alters the launch today; they are reserved
	// for the save/display path.
	SaveDir string
	DoSave  bool

	out io.Writer
}

// New returns a UI that writes diagnostics to stdout and populates the
// given tuner configuration. saveDir seeds the default save directory.
func New(tuner *nrsc5.TunerConfig, saveDir string) *UI {
	return &UI{
		tuner:   tuner,
		SaveDir: saveDir,
		out:     os.Stdout,
	}
}

// Process scans raw command line tokens, program name included. It
// returns Success when every token validated and Halt after printing a
// diagnostic otherwise. The first failure wins; fields set before it
// are not rolled back.
func (u *UI) Process(tokens []string) int {
	// A help flag anywhere short-circuits everything else.
	for _, tok := range tokens {
		if tok == "-h" || tok == "--help" {
			fmt.Fprint(u.out, usage)
			return Halt
		}
	}

	if len(tokens) == 1 {
		u.fail(ErrNoFrequency)
		return Halt
	}

	// The frequency always rides last. It is checked before the flag
	// scan, so a bad frequency wins over any later flag error.
	if err := u.frequency(tokens[len(tokens)-1]); err != nil {
		u.fail(err)
		return Halt
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if len(tok) == 0 || tok[0] != '-' {
			continue
		}
		// The last token is the frequency, never a flag.
		if i == len(tokens)-1 {
			continue
		}
		consumed, err := u.dispatch(tok, tokens[i+1])
		if err != nil {
			u.fail(err)
			return Halt
		}
		if consumed {
			// The argument was eaten by the handler; never re-read it
			// as a flag, even when it is flag-shaped (-p -5).
			i++
		}
	}

	return Success
}

// dispatch routes a flag to its handler over the closed option set and
// reports whether the argument token was consumed. Flags outside the
// set are a defined failure, not a crash.
func (u *UI) dispatch(flag, arg string) (bool, error) {
	switch flag {
	case "-c":
		return true, u.channel(arg)
	case "-p":
		return true, u.ppm(arg)
	case "-l":
		return true, u.logLevel(arg)
	case "-s":
		return true, u.saveDirSet(arg)
	case "-a":
		return true, u.artSet(arg)
	default:
		return false, fmt.Errorf("Unknown option %s", flag)
	}
}

func (u *UI) frequency(arg string) error {
	freq, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return ErrInvalidFrequency
	}
	if freq < 88 || freq > 108 {
		return ErrFrequencyRange
	}
	u.tuner.Freq = freq
	return nil
}

func (u *UI) channel(arg string) error {
	channel, err := strconv.Atoi(arg)
	if err != nil || channel < 0 || channel > 3 {
		return ErrInvalidChannel
	}
	u.tuner.Channel = channel
	return nil
}

// ppm accepts any integer, sign included; there is no declared bound.
func (u *UI) ppm(arg string) error {
	ppm, err := strconv.Atoi(arg)
	if err != nil {
		return ErrInvalidPPM
	}
	u.tuner.PPM = ppm
	return nil
}

func (u *UI) logLevel(arg string) error {
	level, err := strconv.Atoi(arg)
	if err != nil || level < 1 || level > 3 {
		return ErrInvalidLogLevel
	}
	u.tuner.LogLevel = level
	return nil
}

// saveDirSet requires an existing directory; it never creates one and
// stores the path exactly as given.
func (u *UI) saveDirSet(arg string) error {
	info, err := os.Stat(arg)
	if err != nil || !info.IsDir() {
		return ErrInvalidDirectory
	}
	u.SaveDir = arg
	u.DoSave = true
	return nil
}

// artSet ignores its argument token entirely.
func (u *UI) artSet(string) error {
	u.Art = true
	return nil
}

func (u *UI) fail(err error) {
	fmt.Fprintf(u.out, "Error: %v\n", err)
}
