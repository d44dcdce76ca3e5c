package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check every stored sheet for decode and range problems",
	Long: `Check loads every sheet in the directory (the working directory by
default) and validates its traits: attributes and skills 0-5, damage and
stains not negative, humanity 0-10. It exits non-zero if any sheet fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	o, err := openDir(cmd.Context(), dir)
	if err != nil {
		return err
	}

	output, err := o.CheckCharacters(cmd.Context(), &character.CheckCharactersInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, p := range output.Problems {
		fmt.Fprintf(w, "✗ %s: %v\n", p.Key, p.Err)
	}
	fmt.Fprintf(w, "Checked %d sheets, %d with problems\n", output.Checked, len(output.Problems))

	if len(output.Problems) > 0 {
		return errors.FailedPrecondition(fmt.Sprintf("%d of %d sheets have problems", len(output.Problems), output.Checked))
	}
	return nil
}
