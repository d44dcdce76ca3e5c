package vtm

// Stat defaults
const (
	healthBase      = 3
	DefaultHumanity = 7
	AncillaHumanity = 6
	MaxHumanity     = 10
)

// Damage tracks superficial and aggravated damage. Maximum health and
// willpower are derived at runtime, but damage has to live on the sheet.
type Damage struct {
	Superficial int `json:"superficial"`
	Aggravated  int `json:"aggravated"`
}

// UnmarshalJSON requires both damage kinds to be present
func (d *Damage) UnmarshalJSON(data []byte) error {
	fields, err := requireFields(data, "damage", "superficial", "aggravated")
	if err != nil {
		return err
	}

	superficial, err := decodeInt(fields["superficial"], "damage", "superficial")
	if err != nil {
		return err
	}
	aggravated, err := decodeInt(fields["aggravated"], "damage", "aggravated")
	if err != nil {
		return err
	}

	*d = Damage{Superficial: superficial, Aggravated: aggravated}
	return nil
}

// Health is the derived health track of a character
type Health struct {
	Value  int
	Damage Damage
}

// HealthFromCharacter derives health as Stamina + 3. Damage comes only from
// the overrides; nil counts as zero. The character's stored damage is not
// read, so pass &c.Damage.Superficial and &c.Damage.Aggravated for the
// current track.
func HealthFromCharacter(c *Character, superficial, aggravated *int) Health {
	var damage Damage
	if superficial != nil {
		damage.Superficial = *superficial
	}
	if aggravated != nil {
		damage.Aggravated = *aggravated
	}

	return Health{
		Value:  c.Attributes.Get(AttributeStamina) + healthBase,
		Damage: damage,
	}
}

// Willpower is the derived willpower track of a character
type Willpower struct {
	Value  int
	Damage Damage
}

// WillpowerFromCharacter derives willpower as Composure + Resolve, with the
// character's stored willpower damage.
func WillpowerFromCharacter(c *Character) Willpower {
	return Willpower{
		Value:  c.Attributes.Get(AttributeComposure) + c.Attributes.Get(AttributeResolve),
		Damage: c.WillpowerDamage,
	}
}

// Humanity is a character's humanity rating and the stains against it.
// A rating of 0 means the character is lost to the Beast.
type Humanity struct {
	Value  int `json:"value"`
	Stains int `json:"stains"`
}

// NewHumanity returns the starting humanity of a fledgling, 7 with no stains
func NewHumanity() Humanity {
	return Humanity{Value: DefaultHumanity}
}

// NewAncillaHumanity returns the starting humanity of a character embraced as
// an ancilla, one point lower than a fledgling
func NewAncillaHumanity() Humanity {
	return Humanity{Value: AncillaHumanity}
}

// HumanityFromCharacter returns the character's stored humanity
func HumanityFromCharacter(c *Character) Humanity {
	return c.Humanity
}

// UnmarshalJSON requires both the rating and the stains
func (h *Humanity) UnmarshalJSON(data []byte) error {
	fields, err := requireFields(data, "humanity", "value", "stains")
	if err != nil {
		return err
	}

	value, err := decodeInt(fields["value"], "humanity", "value")
	if err != nil {
		return err
	}
	stains, err := decodeInt(fields["stains"], "humanity", "stains")
	if err != nil {
		return err
	}

	*h = Humanity{Value: value, Stains: stains}
	return nil
}
