// Command angleviz renders a saved angle matrix checkpoint as a hue raster.
package main

import (
	"flag"
	"fmt"
	"os"

	"orient-smoother/internal/matrixio"
	"orient-smoother/internal/visualize"
)

func main() {
	anglePath := flag.String("angles", "", "Path to angle matrix text file")
	outPath := flag.String("out", "angles.png", "Output image path")
	flag.Parse()

	if *anglePath == "" {
		fmt.Println("Usage: angleviz -angles <path> [-out angles.png]")
		os.Exit(1)
	}

	angles, err := matrixio.LoadFloat(*anglePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load angle matrix: %v\n", err)
		os.Exit(1)
	}

	img := visualize.AngleMatrixImage(angles)
	defer img.Close()

	if err := visualize.SaveImage(*outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %dx%d angle matrix to %s\n", len(angles), len(angles[0]), *outPath)
}
