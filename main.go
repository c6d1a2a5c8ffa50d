package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"logoconv/converter"
)

// The source file is a fixed name next to the executable; the output name is
// derived from it by extension substitution.
const fileName = "logo.png"

func main() {
	exe, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to resolve executable path: %v", err)
	}

	pngPath := filepath.Join(filepath.Dir(exe), fileName)
	icoPath := converter.IcoPath(pngPath)

	if err := converter.Convert(pngPath, icoPath); err != nil {
		log.Fatalf("Failed to convert %s: %v", fileName, err)
	}

	fmt.Printf("Converted '%s' to ICO format at '%s'\n", fileName, icoPath)
}
