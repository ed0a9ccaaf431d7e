package term

import (
	"fmt"

	"snake-arcade/game/manager"
)

// topLines formats the side panel: rank, name, score and a short date.
func topLines(scores manager.Leaderboard) []string {
	lines := make([]string, 0, len(scores))
	for i, hs := range scores {
		lines = append(lines, fmt.Sprintf("%d. %-5s %5d %s", i+1, hs.Name, hs.Score, hs.Date.Local().Format("01-02 15:04")))
	}
	return lines
}

// listLines formats the full high score table.
func listLines(scores manager.Leaderboard) []string {
	lines := make([]string, 0, len(scores)+1)
	lines = append(lines, fmt.Sprintf("%-4s %-5s %6s  %s", "Rank", "Name", "Score", "Date"))
	for i, hs := range scores {
		lines = append(lines, fmt.Sprintf("%-4d %-5s %6d  %s", i+1, hs.Name, hs.Score, hs.Date.Local().Format("2006-01-02 15:04")))
	}
	if len(scores) == 0 {
		lines = append(lines, "(no scores yet)")
	}
	return lines
}
