package service

import (
	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// StatsService tallies answers for the current session
type StatsService struct {
	stats  domain.SessionStats
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(logger *zap.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Record counts one checked answer
func (s *StatsService) Record(outcome domain.Outcome) {
	if outcome == domain.Correct {
		s.stats.Correct++
		return
	}
	s.stats.Mistakes++
}

// Stats returns the tallies so far
func (s *StatsService) Stats() domain.SessionStats {
	return s.stats
}

// Reset clears the tallies and logs the finished session
func (s *StatsService) Reset() {
	if s.stats.Attempts() > 0 {
		s.logger.Info("Session stats",
			zap.Int("correct", s.stats.Correct),
			zap.Int("mistakes", s.stats.Mistakes),
		)
	}
	s.stats = domain.SessionStats{}
}
