package engine

import "time"

// LinesPerLevel is how many cleared lines advance the level by one.
const LinesPerLevel = 10

var (
	modernLinePoints = [5]int{0, 100, 300, 500, 800}
	nesLinePoints    = [5]int{0, 40, 100, 300, 1200}
)

// LineScore returns the points for clearing n lines at level under system.
// Counts outside 1..4 score nothing.
func LineScore(system ScoringSystem, n, level int) int {
	if n < 1 || n > 4 {
		return 0
	}
	if system == ScoringNES {
		return nesLinePoints[n] * (level + 1)
	}
	return modernLinePoints[n] * max(level, 1)
}

// DropKind distinguishes soft from hard drop bonuses.
type DropKind int

const (
	DropSoft DropKind = iota
	DropHard
)

// DropBonus returns the points for dropping a piece distance rows.
// The NES system awards nothing for drops.
func DropBonus(system ScoringSystem, kind DropKind, distance int) int {
	if system == ScoringNES || distance <= 0 {
		return 0
	}
	if kind == DropHard {
		return distance * 2
	}
	return distance
}

// LevelFor derives the level from total cleared lines.
func LevelFor(lines, startingLevel int) int {
	return lines/LinesPerLevel + startingLevel
}

var nesGravity = [19]time.Duration{
	800, 717, 633, 550, 467, 383, 300, 217, 133, 100,
	83, 83, 83, 67, 67, 67, 50, 50, 50,
}

// GravityInterval is the time between automatic one-row drops at level.
func GravityInterval(system ScoringSystem, level int) time.Duration {
	if system == ScoringNES {
		switch {
		case level < 0:
			return nesGravity[0] * time.Millisecond
		case level < len(nesGravity):
			return nesGravity[level] * time.Millisecond
		case level < 29:
			return 33 * time.Millisecond
		default:
			return 17 * time.Millisecond
		}
	}
	ms := max(1000-(level-1)*50, 100)
	return time.Duration(ms) * time.Millisecond
}
