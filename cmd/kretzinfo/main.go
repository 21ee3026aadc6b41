package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"kretz3d/pkg/config"
	"kretz3d/pkg/kretz"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Path to the kretzfile volume (.vol) to inspect")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	showStats := flag.Bool("stats", false, "Compute and print voxel intensity statistics")
	preview := flag.Int("preview", 0, "Print the first N decoded samples (0 disables)")
	flag.Parse()

	// Validate inputs
	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, falling back to defaults when no file is given
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *showStats {
		cfg.Display.ShowStats = true
	}
	if *preview > 0 {
		cfg.Preview.Enabled = true
		cfg.Preview.MaxValues = *preview
	}

	// Load and decode the file
	loader, err := kretz.NewLoader(*inputFile)
	if err != nil {
		var formatErr *kretz.FormatError
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Fatalf("File does not exist: %v", err)
		case errors.As(err, &formatErr):
			log.Fatalf("Not a kretzfile: %v", err)
		default:
			log.Fatalf("Failed to load file: %v", err)
		}
	}

	meta := loader.GetMetadata()

	fmt.Println("================================")
	fmt.Println("KRETZFILE VOLUMETRIC ULTRASOUND INSPECTOR")
	fmt.Println("================================")
	fmt.Printf("%s\n\n", loader)

	fmt.Printf("Volume geometry:\n")
	fmt.Printf("================\n")
	fmt.Printf("Dimensions (voxels): %d x %d x %d\n",
		meta.Dimensions.X, meta.Dimensions.Y, meta.Dimensions.Z)
	fmt.Printf("Spacing (mm): %.4f x %.4f x %.4f\n",
		meta.Spacing.X, meta.Spacing.Y, meta.Spacing.Z)
	fmt.Printf("Origin: (%.4f, %.4f, %.4f)\n",
		meta.Origin.X, meta.Origin.Y, meta.Origin.Z)
	fmt.Printf("Coordinate system: %s\n", meta.CoordinateSystem)

	if cfg.Display.Verbose {
		fmt.Printf("\nAcquisition:\n")
		fmt.Printf("============\n")
		fmt.Printf("Format version: %s\n", meta.Version)
		fmt.Printf("Frame count: %d\n", meta.FrameCount)
		fmt.Printf("Acquisition mode: %s\n", meta.AcquisitionMode)
		fmt.Printf("Sample type: %s (%d byte(s)/voxel)\n", meta.DataType, meta.DataType.ByteSize())
		fmt.Printf("Compressed: %v\n", meta.Compressed)
	}

	if cfg.Display.ShowPatientInfo {
		info := loader.GetPatientInfo()
		fmt.Printf("\nPatient information:\n")
		fmt.Printf("====================\n")
		fmt.Printf("Patient name: %s\n", info.PatientName)
		fmt.Printf("Study date: %s\n", info.StudyDate)
		fmt.Printf("Study time: %s\n", info.StudyTime)
	}

	if cfg.Display.ShowSystemInfo {
		info := loader.GetSystemInfo()
		fmt.Printf("\nSystem information:\n")
		fmt.Printf("===================\n")
		fmt.Printf("System name: %s\n", info.SystemName)
		fmt.Printf("Probe name: %s\n", info.ProbeName)
	}

	// Surface recovered anomalies so the caller can judge data quality
	warnings := collectWarnings(meta)
	if len(warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		fmt.Printf("=========\n")
		for _, w := range warnings {
			fmt.Printf("- %s\n", w)
		}
	}

	if cfg.Display.ShowStats || cfg.Preview.Enabled {
		volume, err := loader.GetVolume()
		if err != nil {
			log.Fatalf("Failed to get volume data: %v", err)
		}

		if cfg.Display.ShowStats {
			stats := volume.Stats()
			fmt.Printf("\nVoxel intensity statistics:\n")
			fmt.Printf("===========================\n")
			fmt.Printf("Min: %.4f\n", stats.Min)
			fmt.Printf("Max: %.4f\n", stats.Max)
			fmt.Printf("Mean: %.4f\n", stats.Mean)
			fmt.Printf("Std dev: %.4f\n", stats.StdDev)
			fmt.Printf("Zero fraction: %.2f%%\n", stats.ZeroFraction*100)
		}

		if cfg.Preview.Enabled {
			n := cfg.Preview.MaxValues
			if n > len(volume.Data) {
				n = len(volume.Data)
			}
			fmt.Printf("\nSample preview (first %d of %d):\n", n, len(volume.Data))
			fmt.Printf("================================\n")
			for i := 0; i < n; i++ {
				fmt.Printf("%g ", volume.Data[i])
			}
			fmt.Println()
		}
	}
}

// collectWarnings lists the content anomalies the decoder recovered from.
func collectWarnings(meta kretz.Metadata) []string {
	var warnings []string

	if meta.VolumeDataMissing {
		warnings = append(warnings,
			"volume payload was missing or truncated; volume is zero-filled")
	}
	if strings.HasPrefix(meta.CoordinateSystem.String(), "unknown_") {
		warnings = append(warnings,
			fmt.Sprintf("unrecognized coordinate system tag (%s)", meta.CoordinateSystem))
	}
	if strings.HasPrefix(meta.DataType.String(), "unknown_") {
		warnings = append(warnings,
			fmt.Sprintf("unrecognized data type tag (%s), samples decoded as single bytes", meta.DataType))
	}

	return warnings
}
