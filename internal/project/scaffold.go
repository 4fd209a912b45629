package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const manifestTemplate = `[package]
name = "%s"
version = "0.1.0"

[build]
entry = "src/main.fl"
opt = 0
`

const mainTemplate = `module %s;

func main() -> Void {
}
`

// Scaffold creates a manifest and a starter entry file in dir. It
// refuses to touch a directory that already holds a manifest.
func Scaffold(dir, name string) error {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}
	manifest := fmt.Sprintf(manifestTemplate, name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestName, err)
	}
	mainPath := filepath.Join(dir, "src", "main.fl")
	if _, err := os.Stat(mainPath); err == nil {
		return nil
	}
	main := fmt.Sprintf(mainTemplate, name)
	if err := os.WriteFile(mainPath, []byte(main), 0o644); err != nil {
		return fmt.Errorf("failed to write entry file: %w", err)
	}
	return nil
}
