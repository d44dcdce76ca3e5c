package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-sheets/internal/config"
	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
)

var (
	createAncilla    bool
	createGeneration int
	createForce      bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character interactively",
	Long: `Create asks for the player, character and chronicle names, then for the
attribute distribution: one attribute at 4 dots, one at 1 dot and three at
3 dots, with the rest left at 2. Attributes can be named in full or by
shorthand, and each may be chosen only once. The sheet is written to the
path given last.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createAncilla, "ancilla", false, "start at humanity 6, for a character embraced as an ancilla")
	createCmd.Flags().IntVar(&createGeneration, "generation", vtm.DefaultGeneration, "generation; blood potency is derived from it")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "overwrite an existing sheet")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	input := &character.CreateCharacterInput{
		Ancilla:   createAncilla,
		Overwrite: createForce,
	}
	if cmd.Flags().Changed("generation") {
		input.Generation = &createGeneration
	}

	var err error
	if input.PlayerName, err = p.askRequired(ctx, "Player name"); err != nil {
		return err
	}
	if input.CharacterName, err = p.askRequired(ctx, "Character name"); err != nil {
		return err
	}
	if input.Chronicle, err = p.ask(ctx, "Chronicle"); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Attributes:\n%s", attributeHelp())

	var picked []vtm.Attribute
	if input.Highest, err = p.askAttribute(ctx, "Highest attribute (4 dots)", picked); err != nil {
		return err
	}
	picked = append(picked, input.Highest)

	if input.Lowest, err = p.askAttribute(ctx, "Lowest attribute (1 dot)", picked); err != nil {
		return err
	}
	picked = append(picked, input.Lowest)

	for i := range input.Mids {
		label := fmt.Sprintf("Mid attribute %d of %d (3 dots)", i+1, len(input.Mids))
		if input.Mids[i], err = p.askAttribute(ctx, label, picked); err != nil {
			return err
		}
		picked = append(picked, input.Mids[i])
	}

	path, err := p.askRequired(ctx, "Output path")
	if err != nil {
		return err
	}
	if cfg.Store == config.StoreFile && filepath.Ext(path) == "" {
		path += characterrepo.Extension
	}

	o, key, err := openPath(ctx, path)
	if err != nil {
		return err
	}
	input.Key = key

	output, err := o.CreateCharacter(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", output.Character, path)
	return nil
}
