// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
	domainerror "github.com/taxometer/backend/internal/domain/error"
)

// ShiftSource defines the read side of the shift collection used by the dashboard.
type ShiftSource interface {
	// IsLoaded reports whether the collection has been read from storage.
	IsLoaded() bool

	// Current returns a snapshot of the collection.
	Current() []entity.Shift
}

// Clock returns the current time. Tests pin it to a fixed day.
type Clock func() time.Time

// snapshot returns the current collection, or an error if it has not been loaded yet.
func snapshot(source ShiftSource) ([]entity.Shift, error) {
	if !source.IsLoaded() {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStoreNotLoaded,
			"shift collection is still loading",
			domainerror.ErrStoreNotLoaded,
		)
	}
	return source.Current(), nil
}

// parsePeriod validates a requested period.
func parsePeriod(value string) (entity.Period, error) {
	if value == "" {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeMissingPeriod,
			"period is required",
			domainerror.ErrMissingPeriod,
		)
	}

	period, ok := entity.ParsePeriod(value)
	if !ok {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: day, week, or month",
			domainerror.ErrInvalidPeriod,
		)
	}
	return period, nil
}
