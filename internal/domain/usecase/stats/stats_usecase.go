package stats

import (
	"context"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// Cache keys for admin stats. Token purchases invalidate all three.
const (
	CacheKeyDashboard = "stats:dashboard"
	CacheKeyDaily     = "stats:daily"
	CacheKeyTomorrow  = "stats:tomorrow"
)

// cacheTTL bounds how stale a cached stats payload may be when
// invalidation is missed (for example a cache outage during a purchase).
const cacheTTL = 60 * time.Second

// dailyWindowDays is the size of the rolling daily stats window,
// covering the last week plus tomorrow.
const dailyWindowDays = 8

// StatsUseCase implements admin reporting over tokens and accounts
type StatsUseCase struct {
	uow          persistence.UnitOfWork
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStatsUseCase creates a new StatsUseCase
func NewStatsUseCase(
	uow persistence.UnitOfWork,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		uow:          uow,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Dashboard returns the headline admin counters
func (u *StatsUseCase) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	var cached usecase.DashboardStats
	if u.cacheGet(ctx, CacheKeyDashboard, &cached) {
		return &cached, nil
	}

	accountRepo := u.uow.GetAccountRepository(ctx)
	tokenRepo := u.uow.GetTokenRepository(ctx)

	today := entity.NormalizeDate(u.timeProvider.Now())
	tomorrow := today.AddDate(0, 0, 1)

	totalStudents, err := accountRepo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	totalTokens, err := tokenRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	todayTokens, err := tokenRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	tomorrowTokens, err := tokenRepo.CountByDate(ctx, tomorrow)
	if err != nil {
		return nil, err
	}

	result := &usecase.DashboardStats{
		TotalStudents:  totalStudents,
		TotalTokens:    totalTokens,
		TodayTokens:    todayTokens,
		TomorrowTokens: tomorrowTokens,
	}

	u.cacheSet(ctx, CacheKeyDashboard, result)
	return result, nil
}

// DailyStats returns per-day lunch and dinner counts for the rolling
// window ending at tomorrow. Days with no tokens appear with zero counts.
func (u *StatsUseCase) DailyStats(ctx context.Context) ([]usecase.DailyStat, error) {
	var cached []usecase.DailyStat
	if u.cacheGet(ctx, CacheKeyDaily, &cached) {
		return cached, nil
	}

	today := entity.NormalizeDate(u.timeProvider.Now())
	from := today.AddDate(0, 0, -(dailyWindowDays - 2))
	to := today.AddDate(0, 0, 1)

	tokenRepo := u.uow.GetTokenRepository(ctx)
	counts, err := tokenRepo.CountDailyInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]persistence.DailyTokenCount, len(counts))
	for _, c := range counts {
		byDate[c.Date.Format("2006-01-02")] = c
	}

	result := make([]usecase.DailyStat, 0, dailyWindowDays)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		stat := usecase.DailyStat{Date: key}
		if c, ok := byDate[key]; ok {
			stat.LunchCount = c.LunchCount
			stat.DinnerCount = c.DinnerCount
		}
		result = append(result, stat)
	}

	u.cacheSet(ctx, CacheKeyDaily, result)
	return result, nil
}

// TomorrowTokens lists tomorrow's tokens with their owners, the view the
// kitchen works from when planning the next day's meals.
func (u *StatsUseCase) TomorrowTokens(ctx context.Context) ([]*persistence.TokenWithOwner, error) {
	var cached []*persistence.TokenWithOwner
	if u.cacheGet(ctx, CacheKeyTomorrow, &cached) {
		return cached, nil
	}

	tomorrow := entity.NormalizeDate(u.timeProvider.Now()).AddDate(0, 0, 1)

	tokenRepo := u.uow.GetTokenRepository(ctx)
	tokens, err := tokenRepo.ListByDate(ctx, tomorrow)
	if err != nil {
		return nil, err
	}

	u.cacheSet(ctx, CacheKeyTomorrow, tokens)
	return tokens, nil
}

// cacheGet reads a cached payload. Cache failures degrade to a database
// read, never to a request failure.
func (u *StatsUseCase) cacheGet(ctx context.Context, key string, dest any) bool {
	if u.cache == nil {
		return false
	}
	found, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		u.logger.Warn("Stats cache read failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return found
}

func (u *StatsUseCase) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, key, value, cacheTTL); err != nil {
		u.logger.Warn("Stats cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}
