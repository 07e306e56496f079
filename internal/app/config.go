package app

import (
	"os"

	"github.com/joho/godotenv"
)

// Default artifact directories, relative to the working directory. The
// dump directory is always passed to the decoder; the saves directory
// is only used when -s supplies a valid override.
const (
	DefaultDumpDir  = "dump"
	DefaultSavesDir = "saves"
)

// Environment variables that override the default directories.
const (
	EnvDumpDir  = "HDFM_DUMP_DIR"
	EnvSavesDir = "HDFM_SAVES_DIR"
)

// Config holds application configuration, resolved once at startup and
// not mutated afterward.
type Config struct {
	DumpDir  string
	SavesDir string
}

// LoadConfig resolves the artifact directories, reading an optional
// .env file first. Variables already set in the environment win.
func LoadConfig() Config {
	_ = godotenv.Load()

	config := Config{
		DumpDir:  DefaultDumpDir,
		SavesDir: DefaultSavesDir,
	}
	if dir := os.Getenv(EnvDumpDir); dir != "" {
		config.DumpDir = dir
	}
	if dir := os.Getenv(EnvSavesDir); dir != "" {
		config.SavesDir = dir
	}
	return config
}
