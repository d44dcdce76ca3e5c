package vtm

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// SkillMax is the highest rating a skill can hold
const SkillMax = 5

// SkillRating is a skill's dots plus an optional specialty. It is stored in
// JSON as a two-element array: [rating, specialty_or_null].
type SkillRating struct {
	Rating    int
	Specialty *string
}

// HasSpecialty reports whether a specialty label is set
func (r SkillRating) HasSpecialty() bool {
	return r.Specialty != nil
}

// MarshalJSON writes the rating as [rating, specialty_or_null]
func (r SkillRating) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.Rating, r.Specialty})
}

// UnmarshalJSON reads a [rating, specialty_or_null] pair
func (r *SkillRating) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "skill must be a [rating, specialty] array")
	}
	if len(pair) != 2 {
		return errors.Decodef("skill must have 2 elements, got %d", len(pair))
	}

	var decoded SkillRating
	if err := json.Unmarshal(pair[0], &decoded.Rating); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "skill rating must be an integer")
	}
	if err := json.Unmarshal(pair[1], &decoded.Specialty); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "skill specialty must be a string or null")
	}

	*r = decoded
	return nil
}

// SkillSet holds the rating of every skill
type SkillSet struct {
	Athletics     SkillRating `json:"athletics"`
	Brawl         SkillRating `json:"brawl"`
	Craft         SkillRating `json:"craft"`
	Drive         SkillRating `json:"drive"`
	Firearms      SkillRating `json:"firearms"`
	Larceny       SkillRating `json:"larceny"`
	Melee         SkillRating `json:"melee"`
	Stealth       SkillRating `json:"stealth"`
	Survival      SkillRating `json:"survival"`
	AnimalKen     SkillRating `json:"animal_ken"`
	Etiquette     SkillRating `json:"etiquette"`
	Insight       SkillRating `json:"insight"`
	Intimidation  SkillRating `json:"intimidation"`
	Leadership    SkillRating `json:"leadership"`
	Performance   SkillRating `json:"performance"`
	Persuasion    SkillRating `json:"persuasion"`
	Streetwise    SkillRating `json:"streetwise"`
	Subterfuge    SkillRating `json:"subterfuge"`
	Academics     SkillRating `json:"academics"`
	Awareness     SkillRating `json:"awareness"`
	Finance       SkillRating `json:"finance"`
	Investigation SkillRating `json:"investigation"`
	Medicine      SkillRating `json:"medicine"`
	Occult        SkillRating `json:"occult"`
	Politics      SkillRating `json:"politics"`
	Science       SkillRating `json:"science"`
	Technology    SkillRating `json:"technology"`
}

func (s *SkillSet) field(skill Skill) *SkillRating {
	switch skill {
	case SkillAthletics:
		return &s.Athletics
	case SkillBrawl:
		return &s.Brawl
	case SkillCraft:
		return &s.Craft
	case SkillDrive:
		return &s.Drive
	case SkillFirearms:
		return &s.Firearms
	case SkillLarceny:
		return &s.Larceny
	case SkillMelee:
		return &s.Melee
	case SkillStealth:
		return &s.Stealth
	case SkillSurvival:
		return &s.Survival
	case SkillAnimalKen:
		return &s.AnimalKen
	case SkillEtiquette:
		return &s.Etiquette
	case SkillInsight:
		return &s.Insight
	case SkillIntimidation:
		return &s.Intimidation
	case SkillLeadership:
		return &s.Leadership
	case SkillPerformance:
		return &s.Performance
	case SkillPersuasion:
		return &s.Persuasion
	case SkillStreetwise:
		return &s.Streetwise
	case SkillSubterfuge:
		return &s.Subterfuge
	case SkillAcademics:
		return &s.Academics
	case SkillAwareness:
		return &s.Awareness
	case SkillFinance:
		return &s.Finance
	case SkillInvestigation:
		return &s.Investigation
	case SkillMedicine:
		return &s.Medicine
	case SkillOccult:
		return &s.Occult
	case SkillPolitics:
		return &s.Politics
	case SkillScience:
		return &s.Science
	case SkillTechnology:
		return &s.Technology
	default:
		panic(fmt.Sprintf("vtm: unknown skill %d", int(skill)))
	}
}

// Get returns the rating of skill
func (s *SkillSet) Get(skill Skill) SkillRating {
	return *s.field(skill)
}

// Set assigns the rating and specialty of skill. A nil specialty clears it.
func (s *SkillSet) Set(skill Skill, rating int, specialty *string) {
	*s.field(skill) = SkillRating{Rating: rating, Specialty: specialty}
}

// UnmarshalJSON requires all 27 skills to be present
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	keys := make([]string, len(AllSkills))
	for i, skill := range AllSkills {
		keys[i] = skill.String()
	}

	fields, err := requireFields(data, "skills", keys...)
	if err != nil {
		return err
	}

	var decoded SkillSet
	for _, skill := range AllSkills {
		var r SkillRating
		if err := r.UnmarshalJSON(fields[skill.String()]); err != nil {
			return errors.Wrapf(err, "skills.%s", skill)
		}
		*decoded.field(skill) = r
	}

	*s = decoded
	return nil
}
