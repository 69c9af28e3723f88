package service

import (
	"context"

	"folio/internal/content/models"
	"folio/internal/content/repo"
)

// DifficultyCounts buckets entries by problem difficulty.
type DifficultyCounts struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// StatusCounts buckets entries by progress status.
type StatusCounts struct {
	Solved     int `json:"solved"`
	InProgress int `json:"inProgress"`
	Attempted  int `json:"attempted"`
}

// LeetCodeStats is the aggregate over all entries. Total always equals the
// sum of each breakdown; the top-level status counts mirror ByStatus.
type LeetCodeStats struct {
	Total        int              `json:"total"`
	Solved       int              `json:"solved"`
	InProgress   int              `json:"inProgress"`
	Attempted    int              `json:"attempted"`
	ByDifficulty DifficultyCounts `json:"byDifficulty"`
	ByStatus     StatusCounts     `json:"byStatus"`
}

// LeetCode adds the stats aggregate on top of the generic entry CRUD.
type LeetCode struct {
	*CRUD[*models.LeetCodeEntry]
}

func NewLeetCode(col *repo.Collection[*models.LeetCodeEntry], opts ...Option) *LeetCode {
	return &LeetCode{CRUD: NewCRUD("LeetCode problem", col, opts...)}
}

// Stats recomputes the aggregate from the live entries on every call;
// nothing is cached, so it can never drift from the data.
func (s *LeetCode) Stats(ctx context.Context) (*LeetCodeStats, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &LeetCodeStats{Total: len(entries)}
	for _, entry := range entries {
		switch entry.Status {
		case models.StatusSolved:
			stats.ByStatus.Solved++
		case models.StatusInProgress:
			stats.ByStatus.InProgress++
		case models.StatusAttempted:
			stats.ByStatus.Attempted++
		}
		switch entry.Difficulty {
		case models.DifficultyEasy:
			stats.ByDifficulty.Easy++
		case models.DifficultyMedium:
			stats.ByDifficulty.Medium++
		case models.DifficultyHard:
			stats.ByDifficulty.Hard++
		}
	}
	stats.Solved = stats.ByStatus.Solved
	stats.InProgress = stats.ByStatus.InProgress
	stats.Attempted = stats.ByStatus.Attempted
	return stats, nil
}
