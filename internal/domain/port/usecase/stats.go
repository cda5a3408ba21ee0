package usecase

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// DashboardStats aggregates the headline admin dashboard figures
type DashboardStats struct {
	TotalStudents  int64 `json:"totalStudents"`
	TotalTokens    int64 `json:"totalTokens"`
	TodayTokens    int64 `json:"todayTokens"`
	TomorrowTokens int64 `json:"tomorrowTokens"`
}

// DailyStat holds per-day meal counts for the rolling stats window
type DailyStat struct {
	Date        string `json:"date"`
	LunchCount  int64  `json:"lunchCount"`
	DinnerCount int64  `json:"dinnerCount"`
}

// StatsUseCase defines admin reporting operations
type StatsUseCase interface {
	// Dashboard returns the headline counters
	Dashboard(ctx context.Context) (*DashboardStats, error)

	// DailyStats returns per-day meal counts for the rolling window
	// ending at tomorrow
	DailyStats(ctx context.Context) ([]DailyStat, error)

	// TomorrowTokens lists tomorrow's tokens with their owners
	TomorrowTokens(ctx context.Context) ([]*persistence.TokenWithOwner, error)
}
