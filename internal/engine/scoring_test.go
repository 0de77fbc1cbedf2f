package engine

import (
	"testing"
	"time"
)

func TestLineScore(t *testing.T) {
	tests := []struct {
		system ScoringSystem
		lines  int
		level  int
		want   int
	}{
		{ScoringModern, 1, 1, 100},
		{ScoringModern, 2, 1, 300},
		{ScoringModern, 3, 2, 1000},
		{ScoringModern, 4, 3, 2400},
		{ScoringModern, 4, 0, 800}, // level floor of 1
		{ScoringModern, 0, 5, 0},
		{ScoringModern, 5, 5, 0},
		{ScoringNES, 1, 0, 40},
		{ScoringNES, 2, 0, 100},
		{ScoringNES, 3, 9, 3000},
		{ScoringNES, 4, 0, 1200},
		{ScoringNES, 4, 18, 22800},
		{ScoringNES, 0, 3, 0},
	}
	for _, tc := range tests {
		if got := LineScore(tc.system, tc.lines, tc.level); got != tc.want {
			t.Errorf("LineScore(%s, %d, %d) = %d, expected %d", tc.system, tc.lines, tc.level, got, tc.want)
		}
	}
}

func TestDropBonus(t *testing.T) {
	tests := []struct {
		system   ScoringSystem
		kind     DropKind
		distance int
		want     int
	}{
		{ScoringModern, DropSoft, 1, 1},
		{ScoringModern, DropSoft, 7, 7},
		{ScoringModern, DropHard, 16, 32},
		{ScoringModern, DropHard, 0, 0},
		{ScoringNES, DropSoft, 5, 0},
		{ScoringNES, DropHard, 16, 0},
	}
	for _, tc := range tests {
		if got := DropBonus(tc.system, tc.kind, tc.distance); got != tc.want {
			t.Errorf("DropBonus(%s, %d, %d) = %d, expected %d", tc.system, tc.kind, tc.distance, got, tc.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct{ lines, start, want int }{
		{0, 0, 0},
		{9, 0, 0},
		{10, 0, 1},
		{35, 1, 4},
		{0, 7, 7},
	}
	for _, tc := range tests {
		if got := LevelFor(tc.lines, tc.start); got != tc.want {
			t.Errorf("LevelFor(%d, %d) = %d, expected %d", tc.lines, tc.start, got, tc.want)
		}
	}
}

func TestGravityIntervalNES(t *testing.T) {
	table := []int{800, 717, 633, 550, 467, 383, 300, 217, 133, 100, 83, 83, 83, 67, 67, 67, 50, 50, 50}
	for level, ms := range table {
		if got := GravityInterval(ScoringNES, level); got != time.Duration(ms)*time.Millisecond {
			t.Errorf("GravityInterval(nes, %d) = %v, expected %dms", level, got, ms)
		}
	}
	for _, level := range []int{19, 24, 28} {
		if got := GravityInterval(ScoringNES, level); got != 33*time.Millisecond {
			t.Errorf("GravityInterval(nes, %d) = %v, expected 33ms", level, got)
		}
	}
	for _, level := range []int{29, 30, 99} {
		if got := GravityInterval(ScoringNES, level); got != 17*time.Millisecond {
			t.Errorf("GravityInterval(nes, %d) = %v, expected 17ms", level, got)
		}
	}
}

func TestGravityIntervalModern(t *testing.T) {
	tests := []struct {
		level int
		ms    int
	}{
		{1, 1000},
		{2, 950},
		{10, 550},
		{19, 100},
		{25, 100},
		{0, 1050},
	}
	for _, tc := range tests {
		if got := GravityInterval(ScoringModern, tc.level); got != time.Duration(tc.ms)*time.Millisecond {
			t.Errorf("GravityInterval(modern, %d) = %v, expected %dms", tc.level, got, tc.ms)
		}
	}
}
