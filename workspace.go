package vpnmon_builder

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// The freeze tool needs room for its staging directories on top of the
// virtualenv. Volumes with less free space than this are refused outright.
const minBuildSpace = 512 * MB

// stagingPaths lists everything the freeze tool leaves behind in the base
// directory: its build and output directories and the generated spec file.
func stagingPaths(config *Config) []string {
	return []string{
		filepath.Join(config.BaseDir, "build"),
		filepath.Join(config.BaseDir, "dist"),
		filepath.Join(config.BaseDir, config.Artifact+".spec"),
	}
}

// prepareWorkspace checks that the base directory is usable and purges
// staging artifacts left over from a previous run. The virtualenv and the
// previously built executable are left alone; the environment resolver and
// the installer deal with those.
func prepareWorkspace(config *Config) error {
	info, err := os.Stat(config.BaseDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("base directory does not exist: '%s'", config.BaseDir)
	}
	if !osFileWriteAccess(config.BaseDir) {
		return fmt.Errorf("base directory is not writeable: '%s'", config.BaseDir)
	}
	if space := osDiskSpace(config.BaseDir); space >= 0 && space < minBuildSpace {
		return fmt.Errorf("not enough disk space on '%s': %d bytes free", config.BaseDir, space)
	}
	return purgeStaging(config)
}

// purgeStaging removes the freeze tool's staging leftovers. Missing paths are
// fine; anything else failing to go away is not.
func purgeStaging(config *Config) error {
	for _, path := range stagingPaths(config) {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("unable to remove staging path '%s': %w", path, err)
		}
		log.Printf("Purged staging path %s", path)
	}
	return nil
}
