package vtm

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Skill names one of the 27 skills
type Skill int

// Skill constants
const (
	SkillAthletics Skill = iota
	SkillBrawl
	SkillCraft
	SkillDrive
	SkillFirearms
	SkillLarceny
	SkillMelee
	SkillStealth
	SkillSurvival
	SkillAnimalKen
	SkillEtiquette
	SkillInsight
	SkillIntimidation
	SkillLeadership
	SkillPerformance
	SkillPersuasion
	SkillStreetwise
	SkillSubterfuge
	SkillAcademics
	SkillAwareness
	SkillFinance
	SkillInvestigation
	SkillMedicine
	SkillOccult
	SkillPolitics
	SkillScience
	SkillTechnology
)

// skillsPerCategory is the column height of the skill block on a sheet
const skillsPerCategory = 9

// AllSkills lists every skill in sheet order
var AllSkills = []Skill{
	SkillAthletics, SkillBrawl, SkillCraft, SkillDrive, SkillFirearms,
	SkillLarceny, SkillMelee, SkillStealth, SkillSurvival,
	SkillAnimalKen, SkillEtiquette, SkillInsight, SkillIntimidation, SkillLeadership,
	SkillPerformance, SkillPersuasion, SkillStreetwise, SkillSubterfuge,
	SkillAcademics, SkillAwareness, SkillFinance, SkillInvestigation, SkillMedicine,
	SkillOccult, SkillPolitics, SkillScience, SkillTechnology,
}

var skillKeys = [...]string{
	SkillAthletics:     "athletics",
	SkillBrawl:         "brawl",
	SkillCraft:         "craft",
	SkillDrive:         "drive",
	SkillFirearms:      "firearms",
	SkillLarceny:       "larceny",
	SkillMelee:         "melee",
	SkillStealth:       "stealth",
	SkillSurvival:      "survival",
	SkillAnimalKen:     "animal_ken",
	SkillEtiquette:     "etiquette",
	SkillInsight:       "insight",
	SkillIntimidation:  "intimidation",
	SkillLeadership:    "leadership",
	SkillPerformance:   "performance",
	SkillPersuasion:    "persuasion",
	SkillStreetwise:    "streetwise",
	SkillSubterfuge:    "subterfuge",
	SkillAcademics:     "academics",
	SkillAwareness:     "awareness",
	SkillFinance:       "finance",
	SkillInvestigation: "investigation",
	SkillMedicine:      "medicine",
	SkillOccult:        "occult",
	SkillPolitics:      "politics",
	SkillScience:       "science",
	SkillTechnology:    "technology",
}

// Valid reports whether s is one of the 27 skills
func (s Skill) Valid() bool {
	return s >= SkillAthletics && s <= SkillTechnology
}

// String returns the JSON key of the skill
func (s Skill) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillKeys[s]
}

// Category returns the skill's column on the sheet
func (s Skill) Category() Category {
	if !s.Valid() {
		return ""
	}
	return Categories[int(s)/skillsPerCategory]
}

// DisplayName returns the skill name as printed on a sheet, e.g. "Animal Ken"
func (s Skill) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(s.String(), "_", " "))
}

// SkillsIn returns the skills of one category in sheet order
func SkillsIn(category Category) []Skill {
	var out []Skill
	for _, s := range AllSkills {
		if s.Category() == category {
			out = append(out, s)
		}
	}
	return out
}

// ParseSkill matches s case-insensitively against skill names. Multi-word
// skills are accepted with a space, an underscore, a hyphen or nothing between
// the words ("animal ken", "animal_ken", "AnimalKen").
func ParseSkill(s string) (Skill, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	in = strings.NewReplacer("_", " ", "-", " ").Replace(in)
	joined := strings.ReplaceAll(in, " ", "")

	for _, skill := range AllSkills {
		name := strings.ReplaceAll(skillKeys[skill], "_", " ")
		if in == name || joined == strings.ReplaceAll(name, " ", "") {
			return skill, nil
		}
	}
	return 0, errors.Parsef("string did not match any skill: %q", s).
		WithMeta("input", s)
}
