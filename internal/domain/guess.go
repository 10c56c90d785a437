package domain

type GuessKind string

const (
	GuessSelection GuessKind = "selection"
	GuessText      GuessKind = "text"
)

// Guess is either a selected option (easy) or free text (hard); Kind says which field is set.
type Guess struct {
	Kind      GuessKind
	Selection Country
	Text      string
}

func SelectionGuess(country Country) Guess {
	return Guess{Kind: GuessSelection, Selection: country}
}

func TextGuess(text string) Guess {
	return Guess{Kind: GuessText, Text: text}
}

func (d Difficulty) guessKind() GuessKind {
	if d == DifficultyEasy {
		return GuessSelection
	}
	return GuessText
}
