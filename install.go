package vpnmon_builder

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrNoArtifact is returned when the freeze tool finished without leaving an
// executable behind. It is the one failure condition the pipeline checks for
// explicitly.
var ErrNoArtifact = errors.New("no executable artifact was produced")

const markerFilename = ".last-build"

// InstallReport lists the final absolute locations of everything a
// successful run installed. AutostartEntry is empty when autostart is
// disabled.
type InstallReport struct {
	Binary         string
	Marker         string
	MenuEntry      string
	AutostartEntry string
	LocalEntry     string
}

// Installer places the built executable and its launcher entries into their
// final locations.
type Installer struct {
	config   *Config
	packager *Packager
}

func NewInstaller(config *Config, packager *Packager) *Installer {
	return &Installer{config: config, packager: packager}
}

// Install verifies that the packager produced an artifact, moves it into the
// base directory, writes the marker file and the launcher entries, fixes
// permissions and removes the staging leftovers.
//
// If the artifact is missing nothing is written at all; the caller aborts
// with a non-zero exit.
func (i *Installer) Install() (*InstallReport, error) {
	if !i.packager.Produced() {
		return nil, fmt.Errorf("expected artifact at '%s': %w", i.packager.ArtifactPath(), ErrNoArtifact)
	}
	report := &InstallReport{Binary: i.config.BinaryPath()}

	if err := os.Rename(i.packager.ArtifactPath(), report.Binary); err != nil {
		return nil, fmt.Errorf("unable to move artifact into place: %w", err)
	}
	if err := os.Chmod(report.Binary, 0755); err != nil {
		return nil, fmt.Errorf("unable to make artifact executable: %w", err)
	}
	log.Printf("Installed executable %s", report.Binary)

	report.Marker = filepath.Join(i.config.BaseDir, markerFilename)
	if err := os.WriteFile(report.Marker, []byte(i.config.Artifact+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("unable to write marker file: %w", err)
	}

	content := renderLauncher(i.config)
	var err error
	report.MenuEntry, err = writeLauncher(i.config, launcherMenuDir, content)
	if err != nil {
		return nil, err
	}
	if i.config.Autostart {
		report.AutostartEntry, err = writeLauncher(i.config, launcherAutostartDir, content)
		if err != nil {
			return nil, err
		}
	}
	report.LocalEntry = filepath.Join(i.config.BaseDir, i.config.LauncherFilename())
	if err := os.WriteFile(report.LocalEntry, []byte(content), 0755); err != nil {
		return nil, fmt.Errorf("unable to write launcher entry '%s': %w", report.LocalEntry, err)
	}
	log.Printf("Installed launcher entries for %s", i.config.Product)

	if err := purgeStaging(i.config); err != nil {
		return nil, err
	}
	return report, nil
}
