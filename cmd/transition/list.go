package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/gogpu/transition"
	"github.com/gogpu/transition/easing"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transition types and easing curves",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderKinds())
			fmt.Fprintln(out, renderEasings())
			return nil
		},
	}
}

func renderKinds() string {
	rows := make([][]string, 0, len(transition.Kinds()))
	for _, k := range transition.Kinds() {
		aliases := k.Aliases()
		slices.Sort(aliases)
		rows = append(rows, []string{k.String(), strings.Join(aliases, ", ")})
	}
	return renderTable([]string{"Type", "Aliases"}, rows)
}

func renderEasings() string {
	rows := make([][]string, 0, len(easing.Types()))
	for _, t := range easing.Types() {
		rows = append(rows, []string{t.String()})
	}
	return renderTable([]string{"Easing"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
