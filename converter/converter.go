package converter

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// IconSize is the edge length of the single image resource embedded in the
// produced ICO container.
const IconSize = 256

// IcoPath returns the output path for a source image, replacing its
// extension with .ico.
func IcoPath(pngPath string) string {
	return strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".ico"
}

// Convert re-encodes the PNG at pngPath as an ICO container at icoPath,
// embedding one 256x256 representation. The ICO is assembled fully in memory
// before icoPath is touched, so a failed conversion never leaves a partial
// output file behind.
func Convert(pngPath, icoPath string) error {
	f, err := os.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(pngPath), err)
	}

	icon := imaging.Resize(img, IconSize, IconSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := ico.Encode(&buf, icon); err != nil {
		return fmt.Errorf("failed to encode ICO: %w", err)
	}

	if err := os.WriteFile(icoPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write ICO file: %w", err)
	}

	return nil
}
