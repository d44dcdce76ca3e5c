package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
)

// CheckCharacters loads every stored record and validates it. Records that
// cannot be decoded and records with out-of-range traits are both reported
// as problems; the call only fails if the store cannot be enumerated.
func (o *Orchestrator) CheckCharacters(
	ctx context.Context,
	_ *CheckCharactersInput,
) (*CheckCharactersOutput, error) {
	listOutput, err := o.charRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	output := &CheckCharactersOutput{}
	for _, key := range listOutput.Keys {
		output.Checked++

		getOutput, err := o.charRepo.Get(ctx, characterrepo.GetInput{Key: key})
		if err != nil {
			output.Problems = append(output.Problems, CheckResult{Key: key, Err: err})
			continue
		}

		if err := getOutput.Character.Validate(); err != nil {
			output.Problems = append(output.Problems, CheckResult{Key: key, Err: err})
		}
	}

	slog.DebugContext(ctx, "checked characters",
		"checked", output.Checked,
		"problems", len(output.Problems))

	return output, nil
}
