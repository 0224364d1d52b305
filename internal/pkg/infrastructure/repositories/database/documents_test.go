package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestAddAlert(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	alert := newAlert()

	err := r.Add(ctx, alert.ID, alert)
	is.NoErr(err)

	fromDb, err := r.Get(ctx, alert.ID)
	is.NoErr(err)
	is.Equal(alert.Title, fromDb.Title)
	is.Equal(types.SeverityHigh, fromDb.Severity)
}

func TestAddSameAlertTwice(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	alert := newAlert()

	is.NoErr(r.Add(ctx, alert.ID, alert))

	err := r.Add(ctx, alert.ID, alert)
	is.True(errors.Is(err, types.ErrDuplicateID))
}

func TestListReturnsNewestFirst(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	first := newAlert()
	second := newAlert()

	is.NoErr(r.Add(ctx, first.ID, first))
	is.NoErr(r.Add(ctx, second.ID, second))

	first.Status = types.AlertStatusAcknowledged
	is.NoErr(r.Save(ctx, first.ID, first))

	alerts, err := r.List(ctx)
	is.NoErr(err)
	is.Equal(2, len(alerts))
	is.Equal(second.ID, alerts[0].ID)
	is.Equal(types.AlertStatusAcknowledged, alerts[1].Status)
}

func TestTypesDoNotMix(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	db, err := NewSQLiteConnector(ctx)()
	is.NoErr(err)

	alerts, err := NewRepository[types.Alert](db, "alert")
	is.NoErr(err)
	rules, err := NewRepository[types.AlertRule](db, "rule")
	is.NoErr(err)

	alert := newAlert()
	is.NoErr(alerts.Add(ctx, alert.ID, alert))

	_, err = rules.Get(ctx, alert.ID)
	is.True(errors.Is(err, types.ErrNotFound))

	all, err := rules.List(ctx)
	is.NoErr(err)
	is.Equal(0, len(all))
}

func TestSaveAndDeleteUnknown(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	err := r.Save(ctx, "nosuchalert", newAlert())
	is.True(errors.Is(err, types.ErrNotFound))

	err = r.Delete(ctx, "nosuchalert")
	is.True(errors.Is(err, types.ErrNotFound))
}

func TestDelete(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	alert := newAlert()
	is.NoErr(r.Add(ctx, alert.ID, alert))
	is.NoErr(r.Delete(ctx, alert.ID))

	_, err := r.Get(ctx, alert.ID)
	is.True(errors.Is(err, types.ErrNotFound))
}

func newAlert() types.Alert {
	now := time.Now().UTC()
	return types.Alert{
		Meta: types.Meta{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      "Revenue drop",
		Message:    "revenue is below threshold",
		Severity:   types.SeverityHigh,
		Status:     types.AlertStatusNew,
		Source:     "test",
		Department: "sales",
	}
}

func testSetupAlertRepository(t *testing.T) (*is.I, context.Context, storage.Repository[types.Alert]) {
	is := is.New(t)
	ctx := context.Background()

	db, err := NewSQLiteConnector(ctx)()
	is.NoErr(err)

	r, err := NewRepository[types.Alert](db, "alert")
	is.NoErr(err)

	return is, ctx, r
}
