package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vybdev/uconv/config"
	"github.com/vybdev/uconv/logging"
)

var (
	convertCategory string
	convertValue    float64
	convertFrom     string
	convertTo       string
	convertModel    string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Explains a single conversion and exits.",
	Long: `Explains a single conversion and exits.

Units left empty take the same defaults the interactive form would offer:
the first two units of the category, or the first unit other than --from.`,
	Example:      `  uconv convert --category Length --value 5 --from m --to ft`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         Convert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "Length", "unit category")
	convertCmd.Flags().Float64VarP(&convertValue, "value", "v", 0, "value to convert")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source unit")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit")
	convertCmd.Flags().StringVarP(&convertModel, "model", "m", "", "model identifier (defaults to the first configured model)")
}

// Convert is the cobra handler for `uconv convert`. The answer (or the
// apology for a failed request) is always printed; failures also make the
// command exit non-zero.
func Convert(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	sel := s.Selection()

	if err := sel.SelectCategory(convertCategory); err != nil {
		return err
	}
	if err := s.SetValue(convertValue); err != nil {
		return err
	}
	if convertFrom != "" {
		if err := sel.SelectFromUnit(convertFrom); err != nil {
			return err
		}
	}
	if convertTo != "" {
		if err := sel.SelectToUnit(convertTo); err != nil {
			return err
		}
	}
	if convertModel != "" {
		if err := s.SetModel(convertModel); err != nil {
			return err
		}
	}

	if apiKey == "" {
		logging.Log.Warnf("%s is not set, the request will most likely be rejected", config.APIKeyEnv)
	}

	out := s.Convert(cmd.Context(), newDispatcher())
	fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	if out.Err != nil {
		return fmt.Errorf("conversion failed: %w", out.Err)
	}
	return nil
}
