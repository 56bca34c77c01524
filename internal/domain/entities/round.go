package entities

// Result is the message shown after the last check of a round.
type Result int

const (
	ResultNone    Result = iota // nothing checked since the last edit
	ResultCorrect               // "Correct!"
	ResultWrong                 // "Wrong!"
)

// String returns the message displayed to the player for the result.
func (r Result) String() string {
	switch r {
	case ResultCorrect:
		return "Correct!"
	case ResultWrong:
		return "Wrong!"
	default:
		return ""
	}
}

// RoundState is everything the quiz screen displays for one player.
type RoundState struct {
	CurrentIndex    int    // index of the displayed cow in the catalog
	InputText       string // guess typed so far
	NameRevealed    bool   // name is shown over the image
	RevealAvailable bool   // at least one wrong check since the last reset
	Result          Result // message for the last check
}

// NewRoundState creates a fresh round showing the cow at index.
func NewRoundState(index int) RoundState {
	return RoundState{CurrentIndex: index}
}
