// Command gensegments generates random line segments in a plane and writes
// them in the plain-text format ioshell.ReadSegments consumes, so its output
// can feed cmd/intersect directly or seed property tests.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/bentley-ottmann/sweepline/ioshell"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments and writes them in sweepline's plain-text format",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "File to write the generated segments to (default: stdout)",
				Aliases:  []string{"o"},
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

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	segments := make([]geometry.Segment, n)
	for i := int64(0); i < n; i++ {
		for {
			p1 := geometry.NewPoint(float64(randomIntInRange(minx, maxx)), float64(randomIntInRange(miny, maxy)))
			p2 := geometry.NewPoint(float64(randomIntInRange(minx, maxx)), float64(randomIntInRange(miny, maxy)))
			segments[i] = geometry.NewSegment(p1, p2)

			// skip degenerate segments
			if !segments[i].IsDegenerate() {
				break
			}
		}
	}

	out := os.Stdout
	if path := cmd.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("gensegments: creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := ioshell.WriteSegments(w, segments); err != nil {
		return err
	}
	return w.Flush()
}
