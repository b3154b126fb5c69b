package tracker

import (
	"sort"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// LeaderboardSize caps how many entries a leaderboard returns.
const LeaderboardSize = 10

// ProfileSource is the slice of the storage layer the leaderboard needs.
type ProfileSource interface {
	List() ([]string, error)
	Load(username string) (*models.Profile, error)
}

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	Username  string `json:"username"`
	Percent   int    `json:"percent"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Leaderboard ranks all stored users by overall completion percentage,
// descending, ties kept in enumeration order, truncated to the top 10.
// Users with zero roadmap topics have no defined ratio and are excluded.
// A profile that fails to load (for example a file mid-write by another
// process) is skipped rather than failing the whole scan.
func Leaderboard(source ProfileSource) ([]LeaderboardEntry, error) {
	usernames, err := source.List()
	if err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	for _, username := range usernames {
		p, err := source.Load(username)
		if err != nil {
			continue
		}
		overall := OverallProgress(p)
		if overall.Total == 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Username:  p.Username,
			Percent:   overall.Percent,
			Completed: overall.Completed,
			Total:     overall.Total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percent > entries[j].Percent
	})
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries, nil
}
