package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/search"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the datum types accepted in dataset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range data.Kinds() {
				fault := ""
				if k.IsFault() {
					fault = "\t(striated)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", k, fault)
			}
			return nil
		},
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the search methods accepted in run files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range search.Methods() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
