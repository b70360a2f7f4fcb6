// Command orient-smoother regularizes a noisy gradient orientation
// field under a precomputed cluster partition and writes periodic
// checkpoints of the smoothed flow.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"orient-smoother/internal/field"
	"orient-smoother/internal/gradient"
	"orient-smoother/internal/matrixio"
	"orient-smoother/internal/visualize"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to source image (TIFF, PNG, or JPEG)")
	clusterPath := flag.String("clusters", "", "Path to cluster partition text file")
	iters := flag.Int("iters", 40, "Total smoothing iterations")
	step := flag.Int("step", 10, "Checkpoint interval in iterations")
	outDir := flag.String("out", ".", "Output directory for checkpoints")
	kernel := flag.Int("k", 7, "Smoothing window size")
	magPhase := flag.Int("magphase", 20, "Iterations with the magnitude-dominance filter on")
	workers := flag.Int("workers", 0, "Worker goroutines per iteration (0 = all CPUs)")
	flag.Parse()

	if *imagePath == "" || *clusterPath == "" {
		fmt.Println("Usage: orient-smoother -image <path> -clusters <path> [-iters 40] [-step 10] [-out dir]")
		os.Exit(1)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	log.Printf("Loaded %s image: %dx%d pixels", format, bounds.Dx(), bounds.Dy())

	grad, err := gradient.FromImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gradient extraction failed: %v\n", err)
		os.Exit(1)
	}

	clusters, err := matrixio.LoadInt(*clusterPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cluster partition: %v\n", err)
		os.Exit(1)
	}

	fld, err := field.New(grad.Dx, grad.Dy, clusters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to construct field: %v\n", err)
		os.Exit(1)
	}

	params := field.DefaultParams().
		WithKernelSize(*kernel).
		WithMagnitudePhase(*magPhase).
		WithWorkers(*workers)

	smoother, err := field.NewSmoother(fld, gradient.Colors(img), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up smoother: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	base := filepath.Base(*imagePath)
	originalMag := filepath.Join(*outDir, base+"_original_mag.txt")
	if err := matrixio.SaveFloat(originalMag, fld.Magnitudes()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save original magnitudes: %v\n", err)
		os.Exit(1)
	}

	checkpoint := func(iter int, f *field.Field) error {
		log.Printf("iter %d", iter)
		if *step <= 0 || iter%*step != 0 {
			return nil
		}
		prefix := filepath.Join(*outDir, fmt.Sprintf("%s_%d_iter", base, iter))
		return saveCheckpoint(prefix, f)
	}

	if err := smoother.Run(context.Background(), *iters, checkpoint); err != nil {
		fmt.Fprintf(os.Stderr, "Smoothing failed: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Done: %d iterations", *iters)
}

// saveCheckpoint writes the angle and magnitude matrices plus the two
// diagnostic rasters for one checkpoint.
func saveCheckpoint(prefix string, f *field.Field) error {
	if err := matrixio.SaveFloat(prefix+"_angle.txt", f.Angles()); err != nil {
		return err
	}
	if err := matrixio.SaveFloat(prefix+"_mag.txt", f.Magnitudes()); err != nil {
		return err
	}

	angleImg := visualize.AngleImage(f)
	defer angleImg.Close()
	if err := visualize.SaveImage(prefix+".png", angleImg); err != nil {
		return err
	}

	gradImg, err := visualize.GradientImage(f)
	if err != nil {
		return err
	}
	defer gradImg.Close()
	if err := visualize.SaveImage(prefix+"_grad.png", gradImg); err != nil {
		return err
	}

	log.Printf("saved checkpoint %s", prefix)
	return nil
}
