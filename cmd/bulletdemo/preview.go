package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/textview"
)

func runPreview(cmd *cobra.Command, m *model.ListModel) error {
	cells := width
	if !cmd.Flags().Changed("width") {
		cells = 80
	}

	view := textview.New(textview.Options{Width: cells})
	list := bulletlist.NewWithModel(view, m)
	defer list.Close()

	_, err := fmt.Fprintln(cmd.OutOrStdout(), view.String())
	return err
}
