package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/generator"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

var directionNames = map[model.Direction]string{
	model.DirRight:     "right",
	model.DirDown:      "down",
	model.DirDownRight: "down-right",
	model.DirUpRight:   "up-right",
	model.DirLeft:      "left",
	model.DirUp:        "up",
	model.DirUpLeft:    "up-left",
	model.DirDownLeft:  "down-left",
}

func newGenerateCmd() *cobra.Command {
	var (
		size  int
		seed  uint64
		words []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a grid offline",
		Long: `Generate a word-search grid locally, without a server, and print it with
the placement report. The same seed and words always give the same grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < model.MinGridSize || size > model.MaxGridSize {
				return fmt.Errorf("size must be between %d and %d", model.MinGridSize, model.MaxGridSize)
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			normalized := selection.NormalizeWords(words)
			if len(normalized) == 0 {
				return fmt.Errorf("at least one word is required")
			}

			result := generator.Generate(normalized, size, random.NewSeeded(seed))
			newOutput(cmd).Print(buildGenerateResult(result, seed))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 10, "Grid size")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringSliceVar(&words, "words", nil, "Comma-separated words to place")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}

func buildGenerateResult(r *generator.Result, seed uint64) GenerateResult {
	out := GenerateResult{
		Size:       r.Grid.Size,
		Seed:       seed,
		Rows:       r.Grid.Rows(),
		Placements: make([]Placement, 0, len(r.Placements)),
		Dropped:    append([]string{}, r.Dropped...),
	}
	for _, p := range r.Placements {
		out.Placements = append(out.Placements, Placement{
			Word:      p.Word,
			Row:       p.Start.Row,
			Col:       p.Start.Col,
			Direction: directionNames[p.Direction],
		})
	}
	return out
}
