package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olivier-w/vitrine/internal/shuffle"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order [document.yaml]",
		Short: "Print the project titles in shuffled order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(documentArg(args))
			if err != nil {
				return err
			}
			engine := newShuffler(opts.seed)
			projects := shuffle.Apply(doc.Projects, engine.Order(len(doc.Projects)))
			out := cmd.OutOrStdout()
			for _, p := range projects {
				fmt.Fprintln(out, p.Title)
			}
			return nil
		},
	}
}
