// Command calprofile inspects and compares saved calibration profiles.
// It is a read-only reporting tool: it never writes the compiled-in
// hard-iron/scale constants itself, keeping calibration operator-driven.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chrisdick79/altaz-core/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "show":
		runShow(os.Args[2:])
	case "diff":
		runDiff(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: calprofile show <profile.yaml>")
	fmt.Fprintln(os.Stderr, "       calprofile diff <profile.yaml>")
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	p, err := config.LoadProfile(fs.Arg(0))
	if err != nil {
		log.Fatalf("calprofile: %v", err)
	}

	fmt.Printf("profile %q, recorded %s\n", p.Label, p.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("accel bounds: x[%.4f,%.4f] y[%.4f,%.4f] z[%.4f,%.4f]\n",
		p.AccelBounds.XMin, p.AccelBounds.XMax, p.AccelBounds.YMin, p.AccelBounds.YMax, p.AccelBounds.ZMin, p.AccelBounds.ZMax)
	fmt.Printf("mag bounds:   x[%.4f,%.4f] y[%.4f,%.4f] z[%.4f,%.4f]\n",
		p.MagBounds.XMin, p.MagBounds.XMax, p.MagBounds.YMin, p.MagBounds.YMax, p.MagBounds.ZMin, p.MagBounds.ZMax)

	suggestedMOffsetX := (p.MagBounds.XMax + p.MagBounds.XMin) / 2
	suggestedMOffsetY := (p.MagBounds.YMax + p.MagBounds.YMin) / 2
	suggestedMOffsetZ := (p.MagBounds.ZMax + p.MagBounds.ZMin) / 2
	fmt.Printf("suggested MOffset: (%.4f, %.4f, %.4f)\n", suggestedMOffsetX, suggestedMOffsetY, suggestedMOffsetZ)
}

func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	p, err := config.LoadProfile(fs.Arg(0))
	if err != nil {
		log.Fatalf("calprofile: %v", err)
	}

	fmt.Printf("profile %q vs. compiled-in hard-iron constants:\n", p.Label)
	fmt.Printf("  MOffset.X: observed midpoint %.4f vs compiled %.4f\n",
		(p.MagBounds.XMax+p.MagBounds.XMin)/2, config.CompiledHardIron.MOffset.X)
	fmt.Printf("  MOffset.Y: observed midpoint %.4f vs compiled %.4f\n",
		(p.MagBounds.YMax+p.MagBounds.YMin)/2, config.CompiledHardIron.MOffset.Y)
	fmt.Printf("  MOffset.Z: observed midpoint %.4f vs compiled %.4f\n",
		(p.MagBounds.ZMax+p.MagBounds.ZMin)/2, config.CompiledHardIron.MOffset.Z)
	fmt.Printf("  MMax.X: observed %.4f vs compiled %.4f\n", p.MagBounds.XMax, config.CompiledHardIron.MMax.X)
	fmt.Printf("  MMax.Y: observed %.4f vs compiled %.4f\n", p.MagBounds.YMax, config.CompiledHardIron.MMax.Y)
	fmt.Printf("  MMax.Z: observed %.4f vs compiled %.4f\n", p.MagBounds.ZMax, config.CompiledHardIron.MMax.Z)
}
