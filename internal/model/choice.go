package model

// Choice is one answer button of the missing-plant prompt.
type Choice struct {
	ID      PlantID `json:"id"`
	Correct bool    `json:"correct"`
}

// ChoiceSet is the shuffled prompt: the stolen plant plus the decoys.
type ChoiceSet []Choice

// Lookup reports the choice with the given id.
func (cs ChoiceSet) Lookup(id PlantID) (Choice, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// CorrectCount is 1 for every well-formed set.
func (cs ChoiceSet) CorrectCount() int {
	n := 0
	for _, c := range cs {
		if c.Correct {
			n++
		}
	}
	return n
}

func (cs ChoiceSet) IDs() []PlantID {
	out := make([]PlantID, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
