package game

import "chainreaction/random"

// JitterScale bounds the random tie-break added to non-terminal scores.
const JitterScale = 0.5

// Evaluate scores b from player's point of view. Orbs count double, cells one
// orb short of exploding earn a bonus (larger in corners and on edges), and
// opponent cells about to explode cost more the lower their capacity.
//
// A board where only player holds orbs is a Win, one where only opponents do is
// a Loss. Any other score carries jitter in [0, JitterScale) drawn from src, so
// repeated evaluation of the same board is not stable.
func Evaluate(geo Geometry, b *Board, player PlayerID, src random.Source) float64 {
	score := 0.0
	myOrbs, enemyOrbs := 0, 0
	for i, c := range b.Cells {
		if c.Owner == Unowned || c.Blocked {
			continue
		}
		capacity := geo.Capacity(i%b.Cols, i/b.Cols, b.Rows, b.Cols)
		critical := c.Count == capacity-1

		if c.Owner == player {
			myOrbs += c.Count
			score += float64(c.Count * 2)
			if critical {
				score += 3
				switch capacity {
				case 2: // corner
					score += 5
				case 3: // edge
					score += 3
				}
			}
			continue
		}

		enemyOrbs += c.Count
		if critical {
			score -= float64(6 - capacity)
		}
	}

	if myOrbs > 0 && enemyOrbs == 0 {
		return Win
	}
	if myOrbs == 0 && enemyOrbs > 0 {
		return Loss
	}
	return score + src.Float64()*JitterScale
}
