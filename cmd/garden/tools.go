package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
)

var toolsCmd = &cobra.Command{
	Use:   "tools [name]",
	Short: "List the tools or describe one",
	Long: `List every tool with its key and effect, or describe a single tool.
Names are matched case-insensitively and close misspellings are suggested.

Examples:
  garden tools
  garden tools scarecrow
  garden tools "watering can"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTools,
}

func runTools(_ *cobra.Command, args []string) error {
	cfg, _, err := loadGarden()
	if err != nil {
		return err
	}
	rules := garden.NewRules(cfg)

	if len(args) == 1 {
		t, err := garden.ParseTool(args[0])
		if err != nil {
			return err
		}
		describeTool(os.Stdout, rules, t)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTOOL\tEFFECT")
	for _, t := range garden.AllTools() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tui.ToolKeyLabel(t), t.Name(), t.Description())
	}
	return tw.Flush()
}

func describeTool(w io.Writer, rules garden.Rules, t garden.Tool) {
	fmt.Fprintf(w, "%s (key %s)\n", t.Name(), tui.ToolKeyLabel(t))
	fmt.Fprintf(w, "  %s\n", t.Description())

	switch rules.ToolCategory(t) {
	case garden.CategoryHazardRemoval:
		h := rules.ToolTarget(t)
		fmt.Fprintf(w, "  Removes: %s (arrives in %.1fs)\n", h.Title(), rules.TimeToActive(h)/1000)
	case garden.CategoryWater, garden.CategoryLight, garden.CategoryGrowth:
		fmt.Fprintf(w, "  Change: %+.0f\n", rules.ToolDelta(t))
	}
}
