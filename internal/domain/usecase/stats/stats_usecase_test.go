package stats

import (
	"context"
	"testing"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	persistencemocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	uow         *persistencemocks.MockUnitOfWork
	accountRepo *persistencemocks.MockAccountRepository
	tokenRepo   *persistencemocks.MockTokenRepository
	cache       *coremocks.MockCache
	useCase     *StatsUseCase
	ctx         context.Context
	today       time.Time
	tomorrow    time.Time
}

func newStatsFixture(t *testing.T) *statsFixture {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	f := &statsFixture{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		accountRepo: persistencemocks.NewMockAccountRepository(t),
		tokenRepo:   persistencemocks.NewMockTokenRepository(t),
		cache:       coremocks.NewMockCache(t),
		ctx:         context.Background(),
		today:       entity.NormalizeDate(now),
		tomorrow:    entity.NormalizeDate(now).AddDate(0, 0, 1),
	}

	timeNow := coremocks.NewMockTimeProvider(t)
	timeNow.EXPECT().Now().Return(now).Maybe()

	f.useCase = NewStatsUseCase(f.uow, f.cache, timeNow, logger.NewNoopLogger())
	return f
}

func TestDashboard(t *testing.T) {
	t.Run("Cache miss counts from the database and caches the result", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(f.ctx, CacheKeyDashboard, mock.Anything).Return(false, nil).Once()
		f.cache.EXPECT().Set(f.ctx, CacheKeyDashboard, mock.Anything, cacheTTL).Return(nil).Once()

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.uow.EXPECT().GetTokenRepository(f.ctx).Return(f.tokenRepo).Once()

		f.accountRepo.EXPECT().CountStudents(f.ctx).Return(int64(120), nil).Once()
		f.tokenRepo.EXPECT().CountAll(f.ctx).Return(int64(950), nil).Once()
		f.tokenRepo.EXPECT().CountByDate(f.ctx, f.today).Return(int64(60), nil).Once()
		f.tokenRepo.EXPECT().CountByDate(f.ctx, f.tomorrow).Return(int64(45), nil).Once()

		result, err := f.useCase.Dashboard(f.ctx)

		require.NoError(t, err)
		assert.Equal(t, &usecase.DashboardStats{
			TotalStudents:  120,
			TotalTokens:    950,
			TodayTokens:    60,
			TomorrowTokens: 45,
		}, result)
	})

	t.Run("Cache hit never touches the database", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(f.ctx, CacheKeyDashboard, mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*usecase.DashboardStats) = usecase.DashboardStats{
					TotalStudents: 120,
					TotalTokens:   950,
				}
			}).
			Return(true, nil).Once()

		result, err := f.useCase.Dashboard(f.ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(120), result.TotalStudents)
		assert.Equal(t, int64(950), result.TotalTokens)
	})

	t.Run("Cache outage degrades to a database read", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(f.ctx, CacheKeyDashboard, mock.Anything).
			Return(false, errs.ErrDatabaseConnection).Once()
		f.cache.EXPECT().Set(f.ctx, CacheKeyDashboard, mock.Anything, cacheTTL).
			Return(errs.ErrDatabaseConnection).Once()

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.uow.EXPECT().GetTokenRepository(f.ctx).Return(f.tokenRepo).Once()

		f.accountRepo.EXPECT().CountStudents(f.ctx).Return(int64(120), nil).Once()
		f.tokenRepo.EXPECT().CountAll(f.ctx).Return(int64(950), nil).Once()
		f.tokenRepo.EXPECT().CountByDate(f.ctx, f.today).Return(int64(60), nil).Once()
		f.tokenRepo.EXPECT().CountByDate(f.ctx, f.tomorrow).Return(int64(45), nil).Once()

		result, err := f.useCase.Dashboard(f.ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(120), result.TotalStudents)
	})
}

func TestDailyStats(t *testing.T) {
	t.Run("Window covers the last week plus tomorrow with zero-filled gaps", func(t *testing.T) {
		f := newStatsFixture(t)

		from := f.today.AddDate(0, 0, -6)

		f.cache.EXPECT().Get(f.ctx, CacheKeyDaily, mock.Anything).Return(false, nil).Once()
		f.cache.EXPECT().Set(f.ctx, CacheKeyDaily, mock.Anything, cacheTTL).Return(nil).Once()

		f.uow.EXPECT().GetTokenRepository(f.ctx).Return(f.tokenRepo).Once()
		f.tokenRepo.EXPECT().CountDailyInRange(f.ctx, from, f.tomorrow).Return([]persistence.DailyTokenCount{
			{Date: f.today, LunchCount: 30, DinnerCount: 25},
			{Date: f.tomorrow, LunchCount: 20, DinnerCount: 18},
		}, nil).Once()

		result, err := f.useCase.DailyStats(f.ctx)

		require.NoError(t, err)
		require.Len(t, result, 8)

		assert.Equal(t, usecase.DailyStat{Date: "2025-03-04"}, result[0])
		assert.Equal(t, usecase.DailyStat{Date: "2025-03-10", LunchCount: 30, DinnerCount: 25}, result[6])
		assert.Equal(t, usecase.DailyStat{Date: "2025-03-11", LunchCount: 20, DinnerCount: 18}, result[7])
	})
}

func TestTomorrowTokens(t *testing.T) {
	t.Run("Lists tomorrow's tokens with owners", func(t *testing.T) {
		f := newStatsFixture(t)

		tokens := []*persistence.TokenWithOwner{
			{Owner: persistence.TokenOwner{Name: "Rahim Uddin", StudentID: "2004037"}},
		}

		f.cache.EXPECT().Get(f.ctx, CacheKeyTomorrow, mock.Anything).Return(false, nil).Once()
		f.cache.EXPECT().Set(f.ctx, CacheKeyTomorrow, tokens, cacheTTL).Return(nil).Once()

		f.uow.EXPECT().GetTokenRepository(f.ctx).Return(f.tokenRepo).Once()
		f.tokenRepo.EXPECT().ListByDate(f.ctx, f.tomorrow).Return(tokens, nil).Once()

		result, err := f.useCase.TomorrowTokens(f.ctx)

		require.NoError(t, err)
		assert.Equal(t, tokens, result)
	})
}
