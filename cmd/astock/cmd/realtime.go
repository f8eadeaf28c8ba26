package cmd

import (
	"github.com/spf13/cobra"

	"astock/internal/render"
)

var realtimeCmd = &cobra.Command{
	Use:   "realtime <stock-code>...",
	Short: "Show realtime quotes (stub, sample data)",
	Long: `Show realtime quotes for one or more stocks. This command is a stub:
it validates the codes and renders sample values, since the tool is not
wired to a live quote feed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRealtime,
}

func runRealtime(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var codes []string
	for _, raw := range args {
		if c, ok := normalizeCode(out, raw); ok {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	render.RealtimeStubTable(out, codes)
	return nil
}
