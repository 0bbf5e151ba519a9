package game

// Action is what an end-panel control does.
type Action int

const (
	ActionRestart Action = iota
	ActionVisitShop
)

// Panel is the copy of the end-of-round screen.
type Panel struct {
	Headline  string
	Primary   string
	PrimaryDo Action
	Link      string
	LinkDo    Action
}

func panelFor(correct bool) Panel {
	if correct {
		return Panel{
			Headline:  "Du klarte det!",
			Primary:   "Få rabatt her!",
			PrimaryDo: ActionVisitShop,
			Link:      "Spill igjen →",
			LinkDo:    ActionRestart,
		}
	}
	return Panel{
		Headline:  "Nesten!",
		Primary:   "Prøv igjen!",
		PrimaryDo: ActionRestart,
		Link:      "Besøk nettsiden →",
		LinkDo:    ActionVisitShop,
	}
}
