package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astock/internal/export"
	"astock/internal/model"
	"astock/internal/render"
)

var (
	indexKey    string
	indexExport string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "List the constituents of a market index",
	Long: `List the constituents of a market index as of today.

Supported indexes:
  sz50   SSE 50    (sh.000016)
  hs300  CSI 300   (sh.000300)
  zz500  CSI 500   (sh.000905)`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexKey, "index", "i", "", "index key: sz50, hs300 or zz500")
	indexCmd.Flags().StringVar(&indexExport, "export", "", "export constituents to a CSV file")
	indexCmd.MarkFlagRequired("index")
}

func runIndex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	index, ok := model.Indexes[indexKey]
	if !ok {
		return fmt.Errorf("unknown index %q (expected sz50, hs300 or zz500)", indexKey)
	}

	fmt.Fprintf(out, "fetching %s constituents...\n", index.Name)

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(out, "provider login failed: %v\n", err)
		return nil
	}
	defer session.Close()

	constituents, err := session.QueryIndexStocks(index, time.Now().Format(dateLayout))
	if err != nil {
		fmt.Fprintf(out, "fetch failed: %v\n", err)
		return nil
	}
	if len(constituents) == 0 {
		fmt.Fprintf(out, "no constituent data for %s\n", index.Name)
		return nil
	}

	render.ConstituentsTable(out, index, constituents)
	render.IndexPanels(out, index, constituents)

	if indexExport != "" {
		if err := export.WriteConstituents(indexExport, constituents); err != nil {
			fmt.Fprintf(out, "export failed: %v\n", err)
		} else {
			fmt.Fprintf(out, "\nexported to %s\n", indexExport)
		}
	}
	return nil
}
