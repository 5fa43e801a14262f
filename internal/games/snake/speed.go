package snake

import "time"

// SpeedStep is one band of the speed curve: from MinScore on, ticks are
// Delay apart.
type SpeedStep struct {
	MinScore int
	Delay    time.Duration
}

// speedCurve is sorted by MinScore.
var speedCurve = []SpeedStep{
	{MinScore: 0, Delay: 150 * time.Millisecond},
	{MinScore: 3, Delay: 140 * time.Millisecond},
	{MinScore: 6, Delay: 120 * time.Millisecond},
	{MinScore: 10, Delay: 110 * time.Millisecond},
	{MinScore: 14, Delay: 100 * time.Millisecond},
	{MinScore: 18, Delay: 80 * time.Millisecond},
	{MinScore: 22, Delay: 60 * time.Millisecond},
	{MinScore: 32, Delay: 50 * time.Millisecond},
}

// TickDelay returns the pause between ticks at the given score.
func TickDelay(score int) time.Duration {
	for i := len(speedCurve) - 1; i > 0; i-- {
		if score >= speedCurve[i].MinScore {
			return speedCurve[i].Delay
		}
	}
	return speedCurve[0].Delay
}

// SpeedCurve returns a copy of the score-to-delay table.
func SpeedCurve() []SpeedStep {
	return append([]SpeedStep(nil), speedCurve...)
}
