package vpnmon_builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gotk3/gotk3/cairo"
)

// The launcher icon: three flat shapes on a transparent background, the same
// mark the application draws for its tray icon, scaled up to launcher size.
const iconSize = 256

// RenderIcon draws the launcher icon and writes it as a PNG to the given
// path, creating parent directories as needed. Rendering is deterministic;
// re-running overwrites the file with identical content.
func RenderIcon(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create icon directory: %w", err)
	}
	surface := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, iconSize, iconSize)
	c := cairo.Create(surface)

	c.SetSourceRGBA(0, 0, 0, 0)
	c.Paint()

	// Left bar.
	setHexColor(c, 0x42, 0x85, 0xf4)
	c.Rectangle(40, 40, 48, 176)
	c.Fill()
	// Right bar.
	setHexColor(c, 0xfb, 0xbc, 0x05)
	c.Rectangle(168, 40, 48, 176)
	c.Fill()
	// Diagonal stroke connecting the two.
	setHexColor(c, 0x34, 0xa8, 0x53)
	c.MoveTo(40, 40)
	c.LineTo(88, 40)
	c.LineTo(216, 216)
	c.LineTo(168, 216)
	c.ClosePath()
	c.Fill()

	if err := surface.WriteToPNG(path); err != nil {
		return fmt.Errorf("unable to write icon to '%s': %w", path, err)
	}
	return nil
}

func setHexColor(c *cairo.Context, r, g, b int) {
	c.SetSourceRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
