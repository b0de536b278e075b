package services

import (
	"context"
	"math"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const (
	trendDays   = 14
	latestLimit = 100
)

// KPIs are the headline numbers of the admin dashboard.
type KPIs struct {
	Users       int
	Enrollments int
	// Conversion is enrollments per user in percent, capped at 100.
	Conversion int
}

// DayCount is one bucket of a daily trend. Day is midnight UTC.
type DayCount struct {
	Day   time.Time
	Count int
}

type Report struct {
	KPIs
	EnrollmentsByDay  []DayCount
	UsersByDay        []DayCount
	LatestEnrollments []models.Enrollment
	LatestUsers       []models.User
}

type AnalyticsService interface {
	// Report builds the dashboard. It requires the admin flag.
	Report(ctx context.Context) (*Report, error)
}

type analyticsService struct {
	store Store
	now   func() time.Time
}

// NewAnalyticsService returns the admin analytics. A nil now uses time.Now.
func NewAnalyticsService(store Store, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{store: store, now: now}
}

func (s *analyticsService) Report(ctx context.Context) (*Report, error) {
	if !s.store.IsAdminLoggedIn(ctx) {
		return nil, common.ErrNotAdmin
	}

	users, err := s.store.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.GetAllEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	enrollmentTimes := make([]time.Time, len(enrollments))
	for i, e := range enrollments {
		enrollmentTimes[i] = e.Timestamp
	}
	userTimes := make([]time.Time, len(users))
	for i, u := range users {
		userTimes[i] = u.CreatedAt
	}

	return &Report{
		KPIs: KPIs{
			Users:       len(users),
			Enrollments: len(enrollments),
			Conversion:  Conversion(len(users), len(enrollments)),
		},
		EnrollmentsByDay:  CountByDay(enrollmentTimes, now, trendDays),
		UsersByDay:        CountByDay(userTimes, now, trendDays),
		LatestEnrollments: latest(enrollments, latestLimit),
		LatestUsers:       latest(users, latestLimit),
	}, nil
}

// Conversion returns round(enrollments/users*100) capped at 100, or 0 when
// there are no users.
func Conversion(users, enrollments int) int {
	if users == 0 {
		return 0
	}
	pct := int(math.Round(float64(enrollments) / float64(users) * 100))
	return min(100, pct)
}

// CountByDay buckets times into the days UTC calendar days ending with the
// day of now, oldest first. Times outside the window are ignored.
func CountByDay(times []time.Time, now time.Time, days int) []DayCount {
	today := truncateDay(now)
	out := make([]DayCount, days)
	index := make(map[time.Time]int, days)
	for i := range out {
		day := today.AddDate(0, 0, i-(days-1))
		out[i] = DayCount{Day: day}
		index[day] = i
	}
	for _, t := range times {
		if i, ok := index[truncateDay(t)]; ok {
			out[i].Count++
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// latest returns the last n items newest first.
func latest[T any](items []T, n int) []T {
	start := max(0, len(items)-n)
	out := make([]T, 0, len(items)-start)
	for i := len(items) - 1; i >= start; i-- {
		out = append(out, items[i])
	}
	return out
}
