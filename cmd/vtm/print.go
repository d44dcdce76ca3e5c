package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
)

// Output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var printOutput string

var printCmd = &cobra.Command{
	Use:   "print <path>",
	Short: "Print one character sheet with its derived stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&printOutput, "output", "o", outputText, "output format: text, json or yaml")
}

func runPrint(cmd *cobra.Command, args []string) error {
	switch printOutput {
	case outputText, outputJSON, outputYAML:
	default:
		return errors.InvalidArgumentf("unknown output format %q", printOutput)
	}

	o, key, err := openPath(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output, err := o.GetSheet(cmd.Context(), &character.GetSheetInput{Key: key})
	if err != nil {
		return err
	}

	view := newSheetView(output.Sheet)
	w := cmd.OutOrStdout()

	switch printOutput {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return errors.WrapWithCode(err, errors.CodeIO, "failed to write sheet")
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return errors.WrapWithCode(err, errors.CodeIO, "failed to write sheet")
		}
		if err := enc.Close(); err != nil {
			return errors.WrapWithCode(err, errors.CodeIO, "failed to write sheet")
		}
	default:
		if err := view.writeText(w); err != nil {
			return errors.WrapWithCode(err, errors.CodeIO, "failed to write sheet")
		}
	}

	return nil
}
