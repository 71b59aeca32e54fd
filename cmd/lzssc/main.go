// Command lzssc is a thin command-line front end over the lzss package: it
// reads a file, compresses or decompresses it, and writes the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/windlane/lzss"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "lzssc",
		Usage: "compress or decompress files with the lzss container format",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			compressCommand,
			decompressCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("lzssc failed")
		os.Exit(1)
	}
}

var compressCommand = &cli.Command{
	Name:  "compress",
	Usage: "compress a file into the lzss container format",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "in", Usage: "input file, stdin if omitted"},
		&cli.StringFlag{Name: "out", Usage: "output file, stdout if omitted"},
		&cli.UintFlag{Name: "window", Value: uint(lzss.DefaultConfig().Window()), Usage: "sliding window size in bytes"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := lzss.NewConfig(uint32(c.Uint("window")), lzss.DefaultConfig().MinMatch())
		if err != nil {
			return fmt.Errorf("lzssc: invalid config: %w", err)
		}

		in, err := readInput(c.String("in"))
		if err != nil {
			return err
		}

		log.WithField("input_bytes", len(in)).Debug("compressing")
		out, err := lzss.Compress(cfg, in)
		if err != nil {
			return fmt.Errorf("lzssc: compress: %w", err)
		}
		log.WithFields(logrus.Fields{
			"input_bytes":  len(in),
			"output_bytes": len(out),
		}).Debug("compressed")

		return writeOutput(c.String("out"), out)
	},
}

var decompressCommand = &cli.Command{
	Name:  "decompress",
	Usage: "decompress an lzss container back to raw bytes",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "in", Usage: "input file, stdin if omitted"},
		&cli.StringFlag{Name: "out", Usage: "output file, stdout if omitted"},
	},
	Action: func(c *cli.Context) error {
		in, err := readInput(c.String("in"))
		if err != nil {
			return err
		}

		log.WithField("declared_size", lzss.PeekOriginalSize(in)).Debug("decompressing")
		out, err := lzss.Decompress(nil, in)
		if err != nil {
			return fmt.Errorf("lzssc: decompress: %w", err)
		}

		return writeOutput(c.String("out"), out)
	},
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lzssc: reading %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("lzssc: writing %s: %w", path, err)
	}
	return nil
}
