package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hrutik5321/rollpair/internal/rolls"
	"github.com/hrutik5321/rollpair/internal/ui/suggestions"
	"github.com/spf13/cobra"
)

func newSuggestCmd(root *rootFlags) *cobra.Command {
	var (
		file     string
		maxWidth float64
		output   string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print pair suggestions for remaining rolls read from JSON",
		Long: "Reads either an array of [width, _, quantity] tuples or an object\n" +
			"{\"remainingRolls\": [...], \"maxWidth\": n} from --file or stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			rs, docWidth, err := rolls.ParseJSON(data)
			if err != nil {
				return err
			}

			// flag, then document, then config
			width := cfg.MaxWidth
			if docWidth != 0 {
				width = docWidth
			}
			if cmd.Flags().Changed("max-width") {
				width = maxWidth
			}
			log.Printf("suggest: %d roll(s) against %v mm", len(rs), rolls.EffectiveMaxWidth(width))

			s := rolls.Compute(rs, width)
			out := cmd.OutOrStdout()

			switch output {
			case "json":
				if s == nil {
					s = []rolls.Suggestion{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			case "text", "":
				panel := suggestions.Build(s, width)
				if panel == nil {
					return nil
				}
				if noColor {
					_, err = io.WriteString(out, panel.Plain())
				} else {
					_, err = io.WriteString(out, panel.Render())
				}
				return err
			default:
				return fmt.Errorf("invalid --output: %s (use json|text)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON input file, - for stdin")
	cmd.Flags().Float64Var(&maxWidth, "max-width", 0, "Usable width in mm (0 uses the default)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: json|text")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable terminal styling")

	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" || file == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read rolls: %w", err)
	}
	return data, nil
}
