package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

type thing struct {
	ID    string
	Value int
}

func TestAddAndGet(t *testing.T) {
	is, ctx, r := testSetup(t)

	is.NoErr(r.Add(ctx, "a", thing{ID: "a", Value: 1}))

	th, err := r.Get(ctx, "a")
	is.NoErr(err)
	is.Equal(1, th.Value)
}

func TestAddDuplicateFails(t *testing.T) {
	is, ctx, r := testSetup(t)

	is.NoErr(r.Add(ctx, "a", thing{ID: "a"}))

	err := r.Add(ctx, "a", thing{ID: "a"})
	is.True(errors.Is(err, ErrAlreadyExist))
	is.True(errors.Is(err, types.ErrDuplicateID))
}

func TestAddWithoutIDFails(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.Add(ctx, "", thing{})
	is.True(errors.Is(err, types.ErrValidation))
}

func TestListIsMostRecentFirst(t *testing.T) {
	is, ctx, r := testSetup(t)

	is.NoErr(r.Add(ctx, "a", thing{ID: "a"}))
	is.NoErr(r.Add(ctx, "b", thing{ID: "b"}))
	is.NoErr(r.Add(ctx, "c", thing{ID: "c"}))

	is.NoErr(r.Save(ctx, "a", thing{ID: "a", Value: 42}))

	things, err := r.List(ctx)
	is.NoErr(err)
	is.Equal(3, len(things))
	is.Equal("c", things[0].ID)
	is.Equal("b", things[1].ID)
	is.Equal("a", things[2].ID)
	is.Equal(42, things[2].Value)
}

func TestSaveUnknownFails(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.Save(ctx, "nosuchthing", thing{})
	is.True(errors.Is(err, types.ErrNotFound))
}

func TestDeleteTwiceFails(t *testing.T) {
	is, ctx, r := testSetup(t)

	is.NoErr(r.Add(ctx, "a", thing{ID: "a"}))
	is.NoErr(r.Add(ctx, "b", thing{ID: "b"}))
	is.NoErr(r.Delete(ctx, "a"))

	err := r.Delete(ctx, "a")
	is.True(errors.Is(err, types.ErrNotFound))

	things, _ := r.List(ctx)
	is.Equal(1, len(things))
	is.Equal("b", things[0].ID)
}

func testSetup(t *testing.T) (*is.I, context.Context, Repository[thing]) {
	return is.New(t), context.Background(), NewInMemory[thing]()
}

func TestReturnedEntitiesDoNotShareState(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	r := NewInMemory[types.Alert]()

	metadata := map[string]string{"region": "north"}
	is.NoErr(r.Add(ctx, "a1", types.Alert{Meta: types.Meta{ID: "a1"}, Metadata: metadata}))

	metadata["region"] = "south"

	a, err := r.Get(ctx, "a1")
	is.NoErr(err)
	is.Equal("north", a.Metadata["region"])

	a.Metadata["region"] = "west"

	all, err := r.List(ctx)
	is.NoErr(err)
	is.Equal("north", all[0].Metadata["region"])

	all[0].Metadata["owner"] = "mallory"

	again, err := r.Get(ctx, "a1")
	is.NoErr(err)
	is.Equal(1, len(again.Metadata))
}
