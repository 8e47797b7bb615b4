package availabledate

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clinic/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeDateRepo struct {
	dates   map[primitive.ObjectID]*AvailableDate
	bulkErr error
	bulkIDs []primitive.ObjectID
}

func newFakeDateRepo() *fakeDateRepo {
	return &fakeDateRepo{dates: map[primitive.ObjectID]*AvailableDate{}}
}

func (f *fakeDateRepo) add(d AvailableDate) primitive.ObjectID {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	f.dates[d.ID] = &d
	return d.ID
}

func (f *fakeDateRepo) Create(ctx context.Context, date *AvailableDate) error {
	f.dates[date.ID] = date
	return nil
}

func (f *fakeDateRepo) FindByID(ctx context.Context, id string) (*AvailableDate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	d, ok := f.dates[oid]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDateRepo) List(ctx context.Context, filter bson.M) ([]AvailableDate, error) {
	out := []AvailableDate{}
	for _, d := range f.dates {
		if status, ok := filter["status"].(string); ok && d.Status != status {
			continue
		}
		if cidade, ok := filter["cidade"].(string); ok && d.Cidade != cidade {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDateRepo) Update(ctx context.Context, id string, patch bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	d, ok := f.dates[oid]
	if !ok {
		return apperr.ErrNotFound
	}
	if status, ok := patch["status"].(string); ok {
		d.Status = status
	}
	if data, ok := patch["data"].(string); ok {
		d.Data = data
	}
	return nil
}

func (f *fakeDateRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	delete(f.dates, oid)
	return nil
}

func (f *fakeDateRepo) BulkSetStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	f.bulkIDs = ids
	if f.bulkErr != nil {
		return 0, f.bulkErr
	}
	var n int64
	for _, id := range ids {
		if d, ok := f.dates[id]; ok && d.Status != status {
			d.Status = status
			n++
		}
	}
	return n, nil
}

func newDateService(repo DateRepository) DateService {
	return NewDateService(repo, zap.NewNop())
}

func TestCreateDate(t *testing.T) {
	repo := newFakeDateRepo()
	svc := newDateService(repo)

	created, err := svc.CreateDate(context.Background(), &AvailableDate{
		Cidade: "Mantena",
		Data:   "01/01/2030",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDisponivel, created.Status)
	assert.False(t, created.ID.IsZero())
}

func TestCreateDatePastDayOpensUnavailable(t *testing.T) {
	svc := newDateService(newFakeDateRepo())

	created, err := svc.CreateDate(context.Background(), &AvailableDate{
		Cidade: "Mantena",
		Data:   "01/01/2020",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusIndisponivel, created.Status)
}

func TestCreateDateValidation(t *testing.T) {
	svc := newDateService(newFakeDateRepo())
	ctx := context.Background()

	_, err := svc.CreateDate(ctx, &AvailableDate{Cidade: " ", Data: "01/01/2030"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.CreateDate(ctx, &AvailableDate{Cidade: "Mantena", Data: "2030-01-01"})
	assert.True(t, apperr.IsValidation(err))
}

func TestSweep(t *testing.T) {
	repo := newFakeDateRepo()
	pastID := repo.add(AvailableDate{Cidade: "Mantena", Data: "26/08/2026", Status: StatusDisponivel})
	todayID := repo.add(AvailableDate{Cidade: "Mantena", Data: "27/08/2026", Status: StatusDisponivel})
	futureID := repo.add(AvailableDate{Cidade: "Mantena", Data: "28/08/2026", Status: StatusDisponivel})
	brokenID := repo.add(AvailableDate{Cidade: "Mantena", Data: "garbage", Status: StatusDisponivel})
	alreadyOff := repo.add(AvailableDate{Cidade: "Mantena", Data: "01/01/2020", Status: StatusIndisponivel})

	svc := newDateService(repo)
	now := time.Date(2026, 8, 27, 3, 0, 0, 0, time.Local)

	modified, err := svc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), modified)

	assert.Equal(t, StatusIndisponivel, repo.dates[pastID].Status)
	assert.Equal(t, StatusIndisponivel, repo.dates[todayID].Status)
	assert.Equal(t, StatusDisponivel, repo.dates[futureID].Status)
	assert.Equal(t, StatusIndisponivel, repo.dates[brokenID].Status)
	assert.Equal(t, StatusIndisponivel, repo.dates[alreadyOff].Status)
}

func TestSweepNothingStale(t *testing.T) {
	repo := newFakeDateRepo()
	repo.add(AvailableDate{Cidade: "Mantena", Data: "28/08/2026", Status: StatusDisponivel})

	svc := newDateService(repo)
	now := time.Date(2026, 8, 27, 3, 0, 0, 0, time.Local)

	modified, err := svc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestSweepIsIdempotent(t *testing.T) {
	repo := newFakeDateRepo()
	repo.add(AvailableDate{Cidade: "Mantena", Data: "26/08/2026", Status: StatusDisponivel})

	svc := newDateService(repo)
	now := time.Date(2026, 8, 27, 3, 0, 0, 0, time.Local)

	first, err := svc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := svc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestListDatesLazySelfHeal(t *testing.T) {
	repo := newFakeDateRepo()
	staleID := repo.add(AvailableDate{Cidade: "Mantena", Data: "01/01/2020", Status: StatusDisponivel})
	freshID := repo.add(AvailableDate{Cidade: "Mantena", Data: "01/01/2030", Status: StatusDisponivel})

	svc := newDateService(repo)

	dates, err := svc.ListDates(context.Background(), "Mantena")
	require.NoError(t, err)

	byID := map[primitive.ObjectID]AvailableDate{}
	for _, d := range dates {
		byID[d.ID] = d
	}
	assert.Equal(t, StatusIndisponivel, byID[staleID].Status)
	assert.Equal(t, StatusDisponivel, byID[freshID].Status)

	// Repaired in the store too
	assert.Equal(t, []primitive.ObjectID{staleID}, repo.bulkIDs)
	assert.Equal(t, StatusIndisponivel, repo.dates[staleID].Status)
}

func TestListDatesHealFailureStillServesReads(t *testing.T) {
	repo := newFakeDateRepo()
	staleID := repo.add(AvailableDate{Cidade: "Mantena", Data: "01/01/2020", Status: StatusDisponivel})
	repo.bulkErr = errors.New("write unavailable")

	svc := newDateService(repo)

	dates, err := svc.ListDates(context.Background(), "Mantena")
	require.NoError(t, err)
	require.Len(t, dates, 1)

	// Response is normalized even though the repair write failed
	assert.Equal(t, StatusIndisponivel, dates[0].Status)
	assert.Equal(t, StatusDisponivel, repo.dates[staleID].Status)
}

func TestUpdateDateRederivesStatus(t *testing.T) {
	repo := newFakeDateRepo()
	id := repo.add(AvailableDate{Cidade: "Mantena", Data: "01/01/2030", Status: StatusDisponivel})
	svc := newDateService(repo)

	// Rescheduling onto a past day forces Indisponível
	err := svc.UpdateDate(context.Background(), id.Hex(), &AvailableDate{
		Cidade: "Mantena",
		Data:   "01/01/2020",
		Status: StatusDisponivel,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusIndisponivel, repo.dates[id].Status)
}

func TestUpdateDateValidation(t *testing.T) {
	svc := newDateService(newFakeDateRepo())
	id := primitive.NewObjectID().Hex()

	err := svc.UpdateDate(context.Background(), id, &AvailableDate{Data: "01/01/2030", Status: "aberto"})
	assert.True(t, apperr.IsValidation(err))

	err = svc.UpdateDate(context.Background(), id, &AvailableDate{Data: "bad", Status: StatusDisponivel})
	assert.True(t, apperr.IsValidation(err))
}
