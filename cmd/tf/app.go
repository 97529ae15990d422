package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/tf/config"
	"go.viam.com/tf/logging"
	"go.viam.com/tf/referenceframe"
	spatial "go.viam.com/tf/spatialmath"
)

const (
	// Flags.
	flagConfig = "config"
	flagDebug  = "debug"
	flagFrom   = "from"
	flagTo     = "to"
)

func newApp(out io.Writer, logger logging.Logger) *cli.App {
	return &cli.App{
		Name:      "tf",
		Usage:     "resolve points between the frames of a frame graph",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagConfig,
				Aliases:  []string{"c"},
				Usage:    "load the frame graph from `FILE`",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "frames",
				Usage: "list every frame and its parent",
				Action: func(c *cli.Context) error {
					fg, err := loadFrameGraph(c, logger)
					if err != nil {
						return err
					}
					for _, name := range fg.FrameNames() {
						parent, err := fg.Parent(name)
						if errors.Is(err, referenceframe.ErrNoParent) {
							fmt.Fprintln(c.App.Writer, name)
							continue
						}
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "%s -> %s\n", name, parent)
					}
					return nil
				},
			},
			{
				Name:      "lookup",
				Usage:     "print the transform stored for a frame",
				ArgsUsage: "FRAME",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("lookup takes exactly one frame name")
					}
					fg, err := loadFrameGraph(c, logger)
					if err != nil {
						return err
					}
					transform, err := fg.Lookup(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, transform)
					return nil
				},
			},
			{
				Name:      "transform",
				Usage:     "re-express a point from one frame in another",
				ArgsUsage: "X Y Z",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagFrom,
						Usage:    "frame the point is given in",
						Required: true,
					},
					&cli.StringFlag{
						Name:  flagTo,
						Usage: "frame to express the point in",
						Value: referenceframe.Origin,
					},
				},
				Action: func(c *cli.Context) error {
					p, err := parsePoint(c.Args().Slice())
					if err != nil {
						return err
					}
					fg, err := loadFrameGraph(c, logger)
					if err != nil {
						return err
					}
					out, err := fg.Transform(p, c.String(flagFrom), c.String(flagTo))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, out)
					return nil
				},
			},
		},
	}
}

func loadFrameGraph(c *cli.Context, logger logging.Logger) (*referenceframe.FrameGraph, error) {
	cfg, err := config.ReadFile(c.Context, c.String(flagConfig), logger)
	if err != nil {
		return nil, err
	}
	return cfg.FrameGraph(logger.Sublogger("graph"))
}

func parsePoint(args []string) (spatial.Point, error) {
	if len(args) != 3 {
		return spatial.Point{}, errors.Errorf("expected 3 coordinates but got %d", len(args))
	}
	var coords [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return spatial.Point{}, errors.Wrapf(err, "coordinate %d", i)
		}
		coords[i] = v
	}
	return spatial.NewPoint(coords[0], coords[1], coords[2]), nil
}
