package day02

import "advent/internal/record"

// Shape is a hand played in one round.
type Shape uint8

const (
	Rock Shape = iota
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return "Unknown"
}

// Outcome is the result of a round from one player's point of view.
type Outcome uint8

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return "Unknown"
}

var (
	shapeValue   = [3]uint64{Rock: 1, Paper: 2, Scissors: 3}
	outcomeValue = [3]uint64{Loss: 0, Draw: 3, Win: 6}

	// compareTable[me][opp] is my outcome.
	compareTable = [3][3]Outcome{
		Rock:     {Rock: Draw, Paper: Loss, Scissors: Win},
		Paper:    {Rock: Win, Paper: Draw, Scissors: Loss},
		Scissors: {Rock: Loss, Paper: Win, Scissors: Draw},
	}

	// respondTable[opp][want] is the shape that gets want against opp.
	respondTable = [3][3]Shape{
		Rock:     {Loss: Scissors, Draw: Rock, Win: Paper},
		Paper:    {Loss: Rock, Draw: Paper, Win: Scissors},
		Scissors: {Loss: Paper, Draw: Scissors, Win: Rock},
	}
)

// Value is the score for playing s.
func (s Shape) Value() uint64 { return shapeValue[s] }

// Value is the score for reaching o.
func (o Outcome) Value() uint64 { return outcomeValue[o] }

// Compare returns the outcome for s when played against other.
func (s Shape) Compare(other Shape) Outcome {
	return compareTable[s][other]
}

// Respond returns the shape to play against s to reach want.
func (s Shape) Respond(want Outcome) Shape {
	return respondTable[s][want]
}

// ParseShape reads A/B/C (opponent column) or X/Y/Z (guessed column).
func ParseShape(s string) (Shape, error) {
	switch s {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, record.NewParseError("Shape", s, nil)
}

// ParseOutcome reads the second column as the outcome the guide asks for.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, record.NewParseError("Outcome", s, nil)
}
