package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
)

type traitView struct {
	Name      string `json:"name" yaml:"name"`
	Rating    int    `json:"rating" yaml:"rating"`
	Specialty string `json:"specialty,omitempty" yaml:"specialty,omitempty"`
}

type categoryView struct {
	Physical []traitView `json:"physical" yaml:"physical"`
	Social   []traitView `json:"social" yaml:"social"`
	Mental   []traitView `json:"mental" yaml:"mental"`
}

func (c *categoryView) add(category vtm.Category, t traitView) {
	switch category {
	case vtm.CategoryPhysical:
		c.Physical = append(c.Physical, t)
	case vtm.CategorySocial:
		c.Social = append(c.Social, t)
	case vtm.CategoryMental:
		c.Mental = append(c.Mental, t)
	}
}

func (c *categoryView) in(category vtm.Category) []traitView {
	switch category {
	case vtm.CategoryPhysical:
		return c.Physical
	case vtm.CategorySocial:
		return c.Social
	default:
		return c.Mental
	}
}

type trackView struct {
	Max         int `json:"max" yaml:"max"`
	Superficial int `json:"superficial" yaml:"superficial"`
	Aggravated  int `json:"aggravated" yaml:"aggravated"`
}

type humanityView struct {
	Value  int `json:"value" yaml:"value"`
	Stains int `json:"stains" yaml:"stains"`
}

// sheetView is the printable form of a sheet: derived stats resolved and
// traits grouped by category in sheet order
type sheetView struct {
	Player       string       `json:"player" yaml:"player"`
	Character    string       `json:"character" yaml:"character"`
	Chronicle    string       `json:"chronicle" yaml:"chronicle"`
	Attributes   categoryView `json:"attributes" yaml:"attributes"`
	Skills       categoryView `json:"skills" yaml:"skills"`
	Health       trackView    `json:"health" yaml:"health"`
	Willpower    trackView    `json:"willpower" yaml:"willpower"`
	Humanity     humanityView `json:"humanity" yaml:"humanity"`
	BloodPotency int          `json:"blood_potency" yaml:"blood_potency"`
	Generation   int          `json:"generation" yaml:"generation"`
	Hunger       int          `json:"hunger" yaml:"hunger"`
}

func newSheetView(sheet *character.Sheet) *sheetView {
	c := sheet.Character
	view := &sheetView{
		Player:    c.PlayerName,
		Character: c.CharacterName,
		Chronicle: c.Chronicle,
		Health: trackView{
			Max:         sheet.Health.Value,
			Superficial: sheet.Health.Damage.Superficial,
			Aggravated:  sheet.Health.Damage.Aggravated,
		},
		Willpower: trackView{
			Max:         sheet.Willpower.Value,
			Superficial: sheet.Willpower.Damage.Superficial,
			Aggravated:  sheet.Willpower.Damage.Aggravated,
		},
		Humanity: humanityView{
			Value:  sheet.Humanity.Value,
			Stains: sheet.Humanity.Stains,
		},
		BloodPotency: int(c.BloodPotency),
		Generation:   c.Generation.Value(),
		Hunger:       c.Hunger.Value(),
	}

	for _, a := range vtm.AllAttributes {
		view.Attributes.add(a.Category(), traitView{
			Name:   a.DisplayName(),
			Rating: c.Attributes.Get(a),
		})
	}

	for _, s := range vtm.AllSkills {
		rating := c.Skills.Get(s)
		t := traitView{Name: s.DisplayName(), Rating: rating.Rating}
		if rating.HasSpecialty() {
			t.Specialty = *rating.Specialty
		}
		view.Skills.add(s.Category(), t)
	}

	return view
}

func (v *sheetView) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Player:\t%s\n", v.Player)
	fmt.Fprintf(tw, "Character:\t%s\n", v.Character)
	fmt.Fprintf(tw, "Chronicle:\t%s\n", v.Chronicle)

	writeTraits(tw, "ATTRIBUTES", &v.Attributes)
	writeTraits(tw, "SKILLS", &v.Skills)

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Health:\t%d\t(superficial %d, aggravated %d)\n",
		v.Health.Max, v.Health.Superficial, v.Health.Aggravated)
	fmt.Fprintf(tw, "Willpower:\t%d\t(superficial %d, aggravated %d)\n",
		v.Willpower.Max, v.Willpower.Superficial, v.Willpower.Aggravated)
	fmt.Fprintf(tw, "Humanity:\t%d\t(stains %d)\n", v.Humanity.Value, v.Humanity.Stains)
	fmt.Fprintf(tw, "Blood Potency:\t%d\n", v.BloodPotency)
	fmt.Fprintf(tw, "Generation:\t%d\n", v.Generation)
	fmt.Fprintf(tw, "Hunger:\t%d\n", v.Hunger)

	return tw.Flush()
}

func writeTraits(w io.Writer, title string, traits *categoryView) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, category := range vtm.Categories {
		fmt.Fprintf(w, "%s\n", cases.Title(language.English).String(string(category)))
		for _, t := range traits.in(category) {
			if t.Specialty != "" {
				fmt.Fprintf(w, "  %s\t%d\t(%s)\n", t.Name, t.Rating, t.Specialty)
				continue
			}
			fmt.Fprintf(w, "  %s\t%d\t\n", t.Name, t.Rating)
		}
	}
}
