package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/view"
)

const histogramBarWidth = 40

func newSearchCmd(a *app) *cobra.Command {
	var city, typ string

	cmd := &cobra.Command{
		Use:   SearchCmdName,
		Short: SearchCmdShort,
		Example: `  brewfind search --city "San Diego"
  brewfind search --city Denver --type brewpub`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			breweryType, err := dal.ParseBreweryType(typ)
			if err != nil {
				return err
			}

			search := view.NewSearchView(a.client(), a.log)
			if err := search.Submit(cmd.Context(), city, breweryType); err != nil {
				return err
			}

			snap := search.Snapshot()
			if snap.State == view.StateError {
				return errors.New(snap.Message)
			}
			printSearch(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to search (required)")
	cmd.Flags().StringVar(&typ, "type", "", "brewery type filter: "+typeNames())
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func printSearch(w io.Writer, snap view.SearchSnapshot) {
	if snap.Message != "" {
		fmt.Fprintln(w, snap.Message)
	}
	fmt.Fprintf(w, "Total Breweries: %d\n", snap.Total)
	if snap.Total == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, b := range snap.Breweries {
		fmt.Fprintf(w, "  %-40s %s\n", b.Name, b.ID)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Breweries by Postal Code")
	highest := snap.Histogram.Max()
	for _, e := range snap.Histogram.Entries() {
		width := e.Count * histogramBarWidth / highest
		if width == 0 {
			width = 1
		}
		fmt.Fprintf(w, "  %-12s %s %d\n", e.Label, strings.Repeat("#", width), e.Count)
	}
}

func typeNames() string {
	names := make([]string, 0, len(dal.BreweryTypes))
	for _, t := range dal.BreweryTypes {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
