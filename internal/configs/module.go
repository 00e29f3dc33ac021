package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/you-not-fish/qasmc/internal/logs"
)

//go:embed schema.cue
var Schema string

// Filenames are the configuration file names searched in each directory.
var Filenames = []string{
	"qasmc.cue",
	".qasmc.cue",
}

type Module struct {
	dscope.Module
}

// Loader reads the configuration files found in the working directory,
// the user config directory and /etc, in that priority order.
func (Module) Loader(
	logger logs.Logger,
) Loader {

	var dirs []string
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	loader := NewLoader(findFiles(dirs, Filenames), Schema)
	if paths, err := loader.Paths(); err != nil {
		logger.Warn("config file",
			"error", err,
		)
	} else if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return loader
}

func findFiles(dirs []string, filenames []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
