package domain

type Round struct {
	Index        int
	Target       Country
	Options      []Country
	AttemptsUsed int
	Resolved     bool
}

func (r Round) clone() Round {
	if r.Options != nil {
		options := make([]Country, len(r.Options))
		copy(options, r.Options)
		r.Options = options
	}
	return r
}
