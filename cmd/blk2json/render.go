package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"blk2json/internal/converter/mapper"

	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render subcommand.
func NewRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a BLK file as an SVG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG file (default: stdout)")

	return cmd
}

func runRender(stdout io.Writer, path, out string) error {
	content, err := os.ReadFile(path) //nolint:gosec // user-chosen input file
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	shapes, err := mapper.New().Convert(bytes.NewReader(content))
	if err != nil {
		return err
	}

	svg, err := mapper.NewRenderer().Render(shapes)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = fmt.Fprintln(stdout, svg)
		return err
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
