package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vybdev/uconv/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "Lists the unit categories, or the units of one category.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Units,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Lists the models that can answer conversions.",
	Args:  cobra.NoArgs,
	Run:   Models,
}

// Units is the cobra handler for `uconv units`.
func Units(cmd *cobra.Command, args []string) error {
	catalog := units.Builtin()
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range catalog.Categories() {
			list, _ := catalog.Units(name)
			fmt.Fprintf(w, "%s: %s\n", name, strings.Join(list, ", "))
		}
		return nil
	}

	list, err := catalog.Units(args[0])
	if err != nil {
		return err
	}
	for _, u := range list {
		fmt.Fprintln(w, u)
	}
	return nil
}

// Models is the cobra handler for `uconv models`.
func Models(cmd *cobra.Command, _ []string) {
	for _, m := range cfg.Models {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
}
