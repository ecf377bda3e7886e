package vpnmon_builder

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	launcherMenuDir      = ".local/share/applications"
	launcherAutostartDir = ".config/autostart"

	// Field order matters to some desktop shells; keep it.
	launcherTemplate = `[Desktop Entry]
Version={{.version}}
Type=Application
Name={{.product}}
Comment={{.comment}}
Exec={{.execPath}}
Icon={{.iconPath}}
Terminal=false
Categories={{.categories}}
X-GNOME-Autostart-enabled=true
`
)

// renderLauncher expands the desktop entry template with the build's
// metadata. All launcher copies written in one run come from this one
// expansion, which is what keeps them textually identical.
func renderLauncher(config *Config) string {
	return ExpandVariables(launcherTemplate, MergeVariables(config.Variables, StringMap{
		"product":    config.Product,
		"comment":    config.Comment,
		"execPath":   config.BinaryPath(),
		"iconPath":   config.IconPath(),
		"categories": config.CategoryList(),
	}))
}

// writeLauncher writes launcher content into the given directory under the
// user's home, creating the directory as needed.
func writeLauncher(config *Config, dir, content string) (string, error) {
	launcherDir := filepath.Join(config.HomeDir, dir)
	if err := os.MkdirAll(launcherDir, 0755); err != nil {
		return "", fmt.Errorf("unable to create launcher directory '%s': %w", launcherDir, err)
	}
	launcherPath := filepath.Join(launcherDir, config.LauncherFilename())
	if err := os.WriteFile(launcherPath, []byte(content), 0755); err != nil {
		return "", fmt.Errorf("unable to write launcher entry '%s': %w", launcherPath, err)
	}
	return launcherPath, nil
}
