package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"blk2json/internal/common/config"
	"blk2json/internal/converter/labels"
	"blk2json/internal/converter/mapper"
	"blk2json/internal/converter/models"
	historymodels "blk2json/internal/history/models"
	"blk2json/internal/history/storage"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	out       string
	order     string
	lang      string
	stdout    bool
	noHistory bool
}

// NewConvertCmd creates the convert subcommand.
func NewConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a BLK file to <name>.json",
		Long: `Convert reads a BLK file and writes <name>.json into the output directory.
The output directory defaults to the user's Downloads directory and must exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory (default: Downloads)")
	cmd.Flags().StringVar(&opts.order, "order", "", "key order: numeric or lexical")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "shape label language: en or ru")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print JSON to stdout instead of writing a file")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record the conversion")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, opts *convertOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	orderName := opts.order
	if orderName == "" {
		orderName = cfg.KeyOrder
	}
	order, err := models.ParseKeyOrder(orderName)
	if err != nil {
		return err
	}

	lang := opts.lang
	if lang == "" {
		lang = cfg.LabelLang
	}
	if err := labels.Validate(lang); err != nil {
		return err
	}

	content, err := os.ReadFile(path) //nolint:gosec // user-chosen input file
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	converter := mapper.New(mapper.WithKeyOrder(order), mapper.WithLanguage(lang))
	data, shapes, err := converter.ConvertToJSON(bytes.NewReader(content))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output := ""
	if opts.stdout {
		if _, err := out.Write(append(data, '\n')); err != nil {
			return err
		}
	} else {
		dir := opts.out
		if dir == "" {
			dir = cfg.OutputDir
		}
		output, err = storage.NewOutputStorage(dir).SaveJSON(path, data)
		if err != nil {
			return err
		}
		printDone(out, output)
	}

	if opts.noHistory {
		return nil
	}
	return recordConversion(cmd, cfg, path, output, order, shapes)
}

func printDone(w io.Writer, output string) {
	fmt.Fprintf(w, "DONE!\nCHECK IT IN %s:\n%s\n", filepath.Dir(output), filepath.Base(output))
}

func recordConversion(cmd *cobra.Command, cfg *config.Config, source, output string, order models.KeyOrder, shapes *models.Collection) error {
	repo, closeDB, err := openHistory(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	_, err = repo.Save(cmd.Context(), historymodels.Record{
		Source:   filepath.Base(source),
		Output:   output,
		Lines:    shapes.Count(models.TypeLine),
		Quads:    shapes.Count(models.TypeQuad),
		KeyOrder: string(order),
	})
	return err
}
