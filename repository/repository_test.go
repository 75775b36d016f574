package repository

import (
	"context"
	"testing"

	"civicsync-reporter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestReportRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetch all decodes stored fields", func(mt *mtest.T) {
		repo := &ReportRepository{collection: mt.Coll}
		id := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "report_type", Value: "speed_breaker"},
				{Key: "report_description", Value: "Unpainted bump"},
				{Key: "location_lat", Value: 24.9},
				{Key: "location_lon", Value: 67.1},
				{Key: "is_resolved", Value: true},
				{Key: "image", Value: "fallback.png"},
				{Key: "priority", Value: 7},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		reports, err := repo.FetchAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, reports, 1)
		assert.Equal(mt, id, reports[0].ID)
		assert.Equal(mt, models.SpeedBreaker, reports[0].ReportType)
		assert.Equal(mt, "Unpainted bump", reports[0].Description)
		assert.Equal(mt, 7, reports[0].Priority)
		assert.True(mt, reports[0].IsResolved)
	})

	mt.Run("fetch all on empty collection", func(mt *mtest.T) {
		repo := &ReportRepository{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		reports, err := repo.FetchAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, reports)
		assert.Empty(mt, reports)
	})

	mt.Run("fetch all surfaces server errors", func(mt *mtest.T) {
		repo := &ReportRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.FetchAll(context.Background())
		assert.Error(mt, err)
	})

	mt.Run("create assigns id and timestamp", func(mt *mtest.T) {
		repo := &ReportRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		report := &models.Report{ReportType: models.Pothole, Priority: 3}
		require.NoError(mt, repo.Create(context.Background(), report))
		assert.False(mt, report.ID.IsZero())
		assert.False(mt, report.CreatedAt.IsZero())
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email maps to ErrDuplicate", func(mt *mtest.T) {
		repo := &UserRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), &models.User{Email: "a@example.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := &UserRepository{collection: mt.Coll}
		id := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "ayesha"},
			{Key: "email", Value: "a@example.com"},
		}))

		user, err := repo.FindByEmail(context.Background(), "a@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "ayesha", user.Username)
	})

	mt.Run("missing user maps to ErrNotFound", func(mt *mtest.T) {
		repo := &UserRepository{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
