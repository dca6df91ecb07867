package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

// pointerRequest matches the API's pointer body
type pointerRequest struct {
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	CellSize float64 `json:"cell_size"`
	Gap      float64 `json:"gap"`
	Padding  float64 `json:"padding"`
}

func puzzlePath(id string) string {
	return "/api/v1/puzzles/" + url.PathEscape(id)
}

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Play word-search puzzles",
	}

	cmd.AddCommand(newPuzzleStartCmd())
	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleResetCmd())
	cmd.AddCommand(newPuzzleDeleteCmd())
	cmd.AddCommand(newPuzzlePointerCmd())
	cmd.AddCommand(newPuzzleSelectCmd())

	return cmd
}

func newPuzzleStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <category-id>",
		Short: "Start a puzzle for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			body := map[string]string{"category_id": args[0]}
			if err := client.Post("/api/v1/puzzles", body, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			if err := client.Get(puzzlePath(args[0]), &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Play again with a fresh grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			if err := client.Post(puzzlePath(args[0])+"/reset", nil, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(puzzlePath(args[0])); err != nil {
				return err
			}
			newOutput(cmd).PrintMessage("Puzzle deleted")
			return nil
		},
	}
}

func newPuzzlePointerCmd() *cobra.Command {
	geo := selection.DefaultGeometry()

	cmd := &cobra.Command{
		Use:   "pointer <id> <down|move|up|cancel> [x y]",
		Short: "Send a raw pointer event",
		Long: `Send one raw pointer event to a puzzle. Coordinates are pixels relative
to the grid's top-left corner, using the geometry given by the flags.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pointerRequest{
				Type:     args[1],
				CellSize: geo.CellSize,
				Gap:      geo.Gap,
				Padding:  geo.Padding,
			}
			switch len(args) {
			case 4:
				var err error
				if req.X, err = strconv.ParseFloat(args[2], 64); err != nil {
					return fmt.Errorf("invalid x: %w", err)
				}
				if req.Y, err = strconv.ParseFloat(args[3], 64); err != nil {
					return fmt.Errorf("invalid y: %w", err)
				}
			case 3:
				return fmt.Errorf("x and y must be given together")
			}

			var result PointerResult
			if err := client.Post(puzzlePath(args[0])+"/pointer", req, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&geo.CellSize, "cell-size", geo.CellSize, "Cell edge length in pixels")
	cmd.Flags().Float64Var(&geo.Gap, "gap", geo.Gap, "Gap between cells in pixels")
	cmd.Flags().Float64Var(&geo.Padding, "padding", geo.Padding, "Grid padding in pixels")

	return cmd
}

func newPuzzleSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> <row,col> <row,col>",
		Short: "Drag from one cell to another",
		Long: `Select a straight line of cells by pressing on the first cell and
releasing on the second, the way a finger drag would.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseCell(args[1])
			if err != nil {
				return err
			}
			to, err := parseCell(args[2])
			if err != nil {
				return err
			}

			geo := selection.DefaultGeometry()
			send := func(eventType string, cell model.Position, result any) error {
				x, y := geo.CellCenter(cell)
				return client.Post(puzzlePath(args[0])+"/pointer", pointerRequest{
					Type: eventType, X: x, Y: y,
					CellSize: geo.CellSize, Gap: geo.Gap, Padding: geo.Padding,
				}, result)
			}

			if err := send("down", from, nil); err != nil {
				return err
			}
			var result PointerResult
			if err := send("up", to, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

// parseCell parses "row,col"
func parseCell(s string) (model.Position, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return model.Position{}, fmt.Errorf("invalid cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return model.Position{Row: row, Col: col}, nil
}
