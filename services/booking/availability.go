package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursely/backend"
	"coursely/models"
	"coursely/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService fetches and invalidates per-month slot availability.
type AvailabilityService interface {
	// MonthAvailability returns the month's per-day availability. Months
	// strictly before the current one and fetch failures both yield an empty
	// result: better to under-offer availability than double-book.
	MonthAvailability(ctx context.Context, year int, month time.Month) []models.DayAvailability
	// Invalidate drops the cached month so a consumed slot disappears from
	// future queries.
	Invalidate(ctx context.Context, year int, month time.Month) error
}

// DefaultAvailabilityService backs availability with the marketplace backend
// and a short-lived Redis month cache.
type DefaultAvailabilityService struct {
	Backend *backend.Client
	Cache   *redis.Client // optional; nil skips caching
}

func monthCacheKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d-%02d", utils.AvailabilityCachePrefix, year, int(month))
}

func (s *DefaultAvailabilityService) MonthAvailability(ctx context.Context, year int, month time.Month) []models.DayAvailability {
	logger := utils.GetLogger()

	now := time.Now()
	if year < now.Year() || (year == now.Year() && month < now.Month()) {
		// No past-month queries are issued.
		return nil
	}

	key := monthCacheKey(year, month)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var days []models.DayAvailability
			if err := json.Unmarshal([]byte(cached), &days); err == nil {
				return days
			}
		}
	}

	first, last := monthBounds(year, month)
	days, err := s.Backend.AvailableSlots(ctx, first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		logger.Warn("availability fetch failed, offering no slots",
			zap.Int("year", year), zap.Int("month", int(month)), zap.Error(err))
		return nil
	}

	if s.Cache != nil {
		if data, err := json.Marshal(days); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache month availability", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return days
}

func (s *DefaultAvailabilityService) Invalidate(ctx context.Context, year int, month time.Month) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Del(ctx, monthCacheKey(year, month)).Err()
}
