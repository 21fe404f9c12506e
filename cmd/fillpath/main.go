package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jianantian/lyon/fill"
	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/options"
	"github.com/jianantian/lyon/path"
	"github.com/jianantian/lyon/point"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "fillpath",
		Usage:     "Tessellates the fill of an SVG-style path and outputs the triangles to stdout as JSON",
		UsageText: "fillpath --path <svg path data> [--fill-rule <evenodd|nonzero>] [--epsilon <value>] [--dedup]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Usage:    "The path data to tessellate, e.g. \"M 0 0 L 5 1 L 3 5 Z\"",
				Aliases:  []string{"p"},
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "fill-rule",
				Usage:    "The fill rule deciding which regions are inside: evenodd or nonzero",
				Value:    "evenodd",
				OnlyOnce: true,
				Validator: func(s string) error {
					if s != "evenodd" && s != "nonzero" {
						return fmt.Errorf("fill-rule must be evenodd or nonzero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Coincidence tolerance for the sweep's floating-point comparisons",
				Value:    0,
				OnlyOnce: true,
				Validator: func(f float64) error {
					if f < 0 {
						return fmt.Errorf("epsilon must not be negative")
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:     "dedup",
				Usage:    "Coalesce output vertices at coincident positions",
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

type result struct {
	Vertices      []point.Point       `json:"vertices"`
	Indices       []geometry.VertexID `json:"indices"`
	TriangleCount int                 `json:"triangleCount"`
}

func app(_ context.Context, cmd *cli.Command) error {

	p, err := path.Parse(cmd.String("path"))
	if err != nil {
		return err
	}

	rule := options.FillRuleEvenOdd
	if cmd.String("fill-rule") == "nonzero" {
		rule = options.FillRuleNonZero
	}

	var buffers geometry.VertexBuffers
	builder := geometry.NewSimpleBuilder(&buffers)
	if cmd.Bool("dedup") {
		builder = geometry.NewDedupBuilder(&buffers)
	}

	tess := fill.New()
	err = tess.TessellatePath(p, builder,
		options.WithFillRule(rule),
		options.WithEpsilon(cmd.Float("epsilon")),
	)
	if err != nil {
		return err
	}

	b, err := json.Marshal(result{
		Vertices:      buffers.Vertices,
		Indices:       buffers.Indices,
		TriangleCount: buffers.TriangleCount(),
	})
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
