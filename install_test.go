package vpnmon_builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstaller(t *testing.T, config *Config) (*Installer, *Packager) {
	t.Helper()
	runner := newFakeRunner(t, config)
	packager := NewPackager(config, NewEnvironment(config, runner), runner)
	return NewInstaller(config, packager), packager
}

func TestInstallPlacesEverything(t *testing.T) {
	config := testConfig(t)
	installer, packager := newTestInstaller(t, config)
	writeExecutable(t, packager.ArtifactPath())
	require.NoError(t, os.MkdirAll(filepath.Join(config.BaseDir, "build"), 0755))

	report, err := installer.Install()
	require.NoError(t, err)

	info, err := os.Stat(report.Binary)
	require.NoError(t, err, "executable should have been moved into the base dir")
	assert.Equal(t, config.BinaryPath(), report.Binary)
	assert.NotZero(t, info.Mode().Perm()&0111)
	assert.NoFileExists(t, packager.ArtifactPath(), "staging copy should be gone")

	marker, err := os.ReadFile(report.Marker)
	require.NoError(t, err)
	assert.Equal(t, "vpn-monitor\n", string(marker))

	assert.NoDirExists(t, filepath.Join(config.BaseDir, "build"))
	assert.NoDirExists(t, filepath.Join(config.BaseDir, "dist"))
}

func TestInstallWritesIdenticalLauncherCopies(t *testing.T) {
	config := testConfig(t)
	installer, packager := newTestInstaller(t, config)
	writeExecutable(t, packager.ArtifactPath())

	report, err := installer.Install()
	require.NoError(t, err)

	menu, err := os.ReadFile(report.MenuEntry)
	require.NoError(t, err)
	autostart, err := os.ReadFile(report.AutostartEntry)
	require.NoError(t, err)
	local, err := os.ReadFile(report.LocalEntry)
	require.NoError(t, err)

	assert.Equal(t, string(menu), string(autostart))
	assert.Equal(t, string(menu), string(local))
}

func TestInstallSkipsAutostartWhenDisabled(t *testing.T) {
	config := testConfig(t)
	config.Autostart = false
	installer, packager := newTestInstaller(t, config)
	writeExecutable(t, packager.ArtifactPath())

	report, err := installer.Install()
	require.NoError(t, err)

	assert.Empty(t, report.AutostartEntry)
	assert.NoFileExists(t,
		filepath.Join(config.HomeDir, launcherAutostartDir, config.LauncherFilename()))
}

func TestInstallAbortsWithoutArtifact(t *testing.T) {
	config := testConfig(t)
	installer, _ := newTestInstaller(t, config)

	_, err := installer.Install()
	require.ErrorIs(t, err, ErrNoArtifact)

	// Nothing may have been written on the abort path.
	assert.NoFileExists(t, config.BinaryPath())
	assert.NoFileExists(t, filepath.Join(config.BaseDir, markerFilename))
	assert.NoFileExists(t,
		filepath.Join(config.HomeDir, launcherMenuDir, config.LauncherFilename()))
	assert.NoFileExists(t,
		filepath.Join(config.HomeDir, launcherAutostartDir, config.LauncherFilename()))
	assert.NoFileExists(t, filepath.Join(config.BaseDir, config.LauncherFilename()))
}
