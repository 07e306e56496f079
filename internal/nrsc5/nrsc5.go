package nrsc5

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Command is the name of the external decoder binary.
const Command = "nrsc5"

// Default tuner values used when the corresponding option is not given.
const (
	DefaultChannel  = 0
	DefaultPPM      = 0
	DefaultLogLevel = 3
)

// TunerConfig holds the arguments passed to the nrsc5 decoder. Freq has
// no default and must be set before the command is formatted.
type TunerConfig struct {
	Channel  int
	PPM      int
	LogLevel int
	Freq     float64
	DumpDir  string
}

// NewTunerConfig returns a tuner configuration with decoder defaults and
// the given dump directory for extracted AAS files.
func NewTunerConfig(dumpDir string) *TunerConfig {
	return &TunerConfig{
		Channel:  DefaultChannel,
		PPM:      DefaultPPM,
		LogLevel: DefaultLogLevel,
		DumpDir:  dumpDir,
	}
}

// FormatCmd builds the decoder argument vector, binary name first. The
// order and shape of this vector is the wire contract with nrsc5.
func (c *TunerConfig) FormatCmd() []string {
	return []string{
		Command,
		"-l", strconv.Itoa(c.LogLevel),
		"-p", strconv.Itoa(c.PPM),
		"--dump-aas-files", c.DumpDir,
		strconv.FormatFloat(c.Freq, 'f', -1, 64),
		strconv.Itoa(c.Channel),
	}
}

// Process is a handle to a running decoder child process.
type Process struct {
	cmd    *exec.Cmd
	logger *logrus.Logger
}

// Launch starts the decoder with the given argument vector. The child
// inherits the parent's standard streams; its output is not captured or
// parsed. A failure to resolve or start the binary is fatal to the
// caller and is returned wrapped, never retried.
func Launch(argv []string, logger *logrus.Logger) (*Process, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", argv[0], err)
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}

	logger.WithFields(logrus.Fields{
		"pid":  cmd.Process.Pid,
		"args": argv[1:],
	}).Debug("Decoder started")

	return &Process{cmd: cmd, logger: logger}, nil
}

// Wait blocks until the decoder exits and returns its exit status.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Stop interrupts the decoder, killing it if the signal cannot be
// delivered, and reaps it.
func (p *Process) Stop() error {
	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		p.cmd.Process.Kill()
	}
	return p.cmd.Wait()
}
