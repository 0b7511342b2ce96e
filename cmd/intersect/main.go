// Command intersect reads a set of line segments and reports every pairwise
// intersection point found by the Bentley-Ottmann sweep, matching the
// input.txt/output.txt convention of the original source this module is
// based on.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bentley-ottmann/sweepline/ioshell"
	"github.com/bentley-ottmann/sweepline/sweep"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "intersect",
		Usage:     "Reports all pairwise line segment intersection points",
		UsageText: "intersect [--stdin] [--input <path>] [--output <path>] [--stdout]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "stdin",
				Usage:    "Read segments from stdin instead of --input",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "input",
				Usage:    "File to read segments from",
				Aliases:  []string{"i"},
				Value:    "input.txt",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "File to write reported intersection points to",
				Aliases:  []string{"o"},
				Value:    "output.txt",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "stdout",
				Usage:    "Write intersection points to stdout instead of --output",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	in := os.Stdin
	if !cmd.Bool("stdin") {
		f, err := os.Open(cmd.String("input"))
		if err != nil {
			return fmt.Errorf("intersect: opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	segments, err := ioshell.ReadSegments(in)
	if err != nil {
		return fmt.Errorf("intersect: %w", err)
	}

	// Archive a copy of the input for later visualization (out of scope here).
	if archive, err := os.Create("input.txt"); err == nil {
		_ = ioshell.WriteSegments(archive, segments)
		archive.Close()
	}

	start := time.Now()
	points := sweep.FindIntersectionsFast(segments)
	elapsed := time.Since(start)

	out := os.Stdout
	if !cmd.Bool("stdout") {
		f, err := os.Create(cmd.String("output"))
		if err != nil {
			return fmt.Errorf("intersect: creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := ioshell.WriteIntersections(out, points); err != nil {
		return fmt.Errorf("intersect: %w", err)
	}

	fmt.Printf("Calculation done in %d microseconds.\n", elapsed.Microseconds())
	return nil
}
