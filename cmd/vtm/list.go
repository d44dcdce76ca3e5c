package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List the characters in a directory",
	Long: `List prints "player / character" for every .json sheet in the directory,
which defaults to the working directory. Sheets that fail to load are
reported on stderr and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	o, err := openDir(cmd.Context(), dir)
	if err != nil {
		return err
	}

	output, err := o.ListCharacters(cmd.Context(), &character.ListCharactersInput{})
	if err != nil {
		return err
	}

	for _, c := range output.Characters {
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
	}

	return nil
}
