package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type searchResult struct {
	Query     string `json:"query"`
	Positions []int  `json:"positions"`
}

func newSearchCmd(a *app) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Print the offsets at which each query occurs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.loadService()
			if err != nil {
				return err
			}
			results, err := svc.SearchAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				rows := make([]searchResult, len(args))
				for i, q := range args {
					rows[i] = searchResult{Query: q, Positions: results[i]}
				}
				return writeJSON(out, rows)
			}
			for i, q := range args {
				if len(results[i]) == 0 {
					fmt.Fprintf(out, "Sequence %q not found.\n", q)
					continue
				}
				fmt.Fprintf(out, "Sequence %q found at positions: %v\n", q, results[i])
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return c
}

func newFindCmd(a *app) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "find PREFIX SUFFIX",
		Short: "Print every substring starting with PREFIX and ending with SUFFIX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.loadService()
			if err != nil {
				return err
			}
			matches, err := svc.Find(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, matches)
			}
			fmt.Fprintf(out, "Found %d substrings starting with %q and ending with %q\n", len(matches), args[0], args[1])
			for _, m := range matches {
				fmt.Fprintf(out, "(%d, %d) %s\n", m.Start, m.End, m.Text)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print matches as JSON")
	return c
}

func newRepeatCmd(a *app) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "repeat",
		Short: "Print the longest substring that occurs at least twice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.loadService()
			if err != nil {
				return err
			}
			rep, err := svc.LongestRepeat()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, rep)
			}
			if rep.Text == "" {
				fmt.Fprintln(out, "No repeated substring.")
				return nil
			}
			fmt.Fprintf(out, "Longest repeat %q found at positions: %v\n", rep.Text, rep.Positions)
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the repeat as JSON")
	return c
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Build the index and print its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.loadService()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), svc.Info())
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
