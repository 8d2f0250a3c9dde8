package snowman

// Snapshot captures the complete game state for testing and debugging.
type Snapshot struct {
	Word           string
	Revealed       string
	WrongGuesses   int
	AcceptingInput bool
	Phase          Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Word:           g.word,
		Revealed:       g.Revealed(),
		WrongGuesses:   g.wrong,
		AcceptingInput: g.accepting,
		Phase:          g.Phase(),
	}
}
