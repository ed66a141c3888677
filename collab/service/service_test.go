package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MarisolRV/crossover/collab"
	"github.com/MarisolRV/crossover/internal"
	mocks "github.com/MarisolRV/crossover/mocks/collab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCosmeticValues() map[string]string {
	return map[string]string{
		"makeupBrand":          "Glow Cosmetics",
		"videogame":            "Star Quest",
		"collaborationDate":    "2024-06-01",
		"collaborationType":    "Limited edition palette",
		"salesIncreasePercent": "45%",
		"imageUrl":             "https://cdn.example.com/images/palette.png",
	}
}

func recordFromValues(kind collab.Kind, values map[string]string) collab.Record {
	var r collab.Record
	for _, f := range kind.Fields {
		r.SetValue(f.Name, values[f.Name])
	}
	return r
}

func TestCollabServiceCreate(t *testing.T) {
	ctx := context.Background()
	kind := collab.Cosmetics

	t.Run("Valid Values", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		values := validCosmeticValues()
		expect := recordFromValues(kind, values)
		stored := expect
		stored.ID = 1
		mockRepo.On("Create", ctx, kind, expect).Return(&stored, nil)

		created, err := testService.Create(ctx, kind, values)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 1, created.ID)
		// Stored fields must round trip exactly
		for _, f := range kind.Fields {
			assert.Equal(t, values[f.Name], created.Value(f.Name), f.Name)
		}
	})

	t.Run("Invalid Values", func(t *testing.T) {
		for _, test := range []struct {
			field string
			value string
		}{
			{"salesIncreasePercent", "45.5%"},
			{"salesIncreasePercent", "45"},
			{"salesIncreasePercent", "%"},
			{"salesIncreasePercent", ""},
			{"makeupBrand", "ab"},
			{"videogame", ""},
			{"imageUrl", "ab"},
		} {
			mockRepo := &mocks.Repository{}
			testService := NewCollabService(mockRepo)

			values := validCosmeticValues()
			values[test.field] = test.value

			created, err := testService.Create(ctx, kind, values)
			require.Error(t, err, "%s=%q should be rejected", test.field, test.value)
			assert.Nil(t, created)
			assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
			mockRepo.AssertNotCalled(t, "Create")
		}
	})

	t.Run("Missing Field", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		values := validCosmeticValues()
		delete(values, "collaborationType")

		_, err := testService.Create(ctx, kind, values)
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestCollabServiceUpdate(t *testing.T) {
	ctx := context.Background()
	kind := collab.Cosmetics

	t.Run("Merge Patch", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		existing := recordFromValues(kind, validCosmeticValues())
		existing.ID = 7
		merged := existing
		merged.MakeupBrand = "Velvet Beauty"

		mockRepo.On("Get", ctx, kind, 7).Return(&existing, nil)
		mockRepo.On("Update", ctx, kind, merged).Return(&merged, nil)

		// Blank values are "not provided": they must not clear fields
		updated, err := testService.Update(ctx, kind, 7, map[string]string{
			"makeupBrand": "Velvet Beauty",
			"videogame":   "",
		})
		require.NoError(t, err)
		assert.Equal(t, "Velvet Beauty", updated.MakeupBrand)
		assert.Equal(t, "Star Quest", updated.Videogame)
	})

	t.Run("Invalid Value", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		existing := recordFromValues(kind, validCosmeticValues())
		existing.ID = 7
		mockRepo.On("Get", ctx, kind, 7).Return(&existing, nil)

		_, err := testService.Update(ctx, kind, 7, map[string]string{
			"salesIncreasePercent": "45.5%",
		})
		require.Error(t, err)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		mockRepo.On("Get", ctx, kind, 99).Return(nil, errors.New("record not found"))

		_, err := testService.Update(ctx, kind, 99, map[string]string{"makeupBrand": "Velvet Beauty"})
		require.Error(t, err)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestCollabServiceSearchByField(t *testing.T) {
	ctx := context.Background()
	kind := collab.Cosmetics

	t.Run("Known Field", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		expect := []collab.Record{recordFromValues(kind, validCosmeticValues())}
		mockRepo.On("Search", ctx, kind, "makeup_brand", "glow").Return(expect, nil)

		records, err := testService.SearchByField(ctx, kind, "makeupBrand", "glow")
		require.NoError(t, err)
		assert.Equal(t, expect, records)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		// An unregistered field name is "no matches", never an error and
		// never a query
		for _, name := range []string{"nonexistent", "id; DROP TABLE cosmetic_collabs", "id"} {
			mockRepo := &mocks.Repository{}
			testService := NewCollabService(mockRepo)

			records, err := testService.SearchByField(ctx, kind, name, "whatever")
			require.NoError(t, err)
			assert.Empty(t, records)
			mockRepo.AssertNotCalled(t, "Search")
		}
	})
}

func TestCollabServiceListByDate(t *testing.T) {
	ctx := context.Background()
	kind := collab.Videogames

	mockRepo := &mocks.Repository{}
	testService := NewCollabService(mockRepo)

	records := []collab.Record{
		{ID: 1, CollaborationDate: "2024-01-01"},
		{ID: 2, CollaborationDate: "2023-12-31"},
		{ID: 3, CollaborationDate: "2024-06-01"},
		{ID: 4, CollaborationDate: "9999-01-01"},
	}
	mockRepo.On("List", ctx, kind).Return(records, nil)

	sorted, err := testService.ListByDate(ctx, kind)
	require.NoError(t, err)
	require.Len(t, sorted, 4)

	// Plain string comparison, descending: "9999-01-01" wins even though
	// it is not a real date
	var dates []string
	for _, r := range sorted {
		dates = append(dates, r.CollaborationDate)
	}
	assert.Equal(t, []string{"9999-01-01", "2024-06-01", "2024-01-01", "2023-12-31"}, dates)
}

func TestCollabServiceDelete(t *testing.T) {
	ctx := context.Background()
	kind := collab.Cosmetics

	t.Run("Valid Record", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		existing := recordFromValues(kind, validCosmeticValues())
		existing.ID = 3
		mockRepo.On("Get", ctx, kind, 3).Return(&existing, nil)
		mockRepo.On("SoftDelete", ctx, kind, existing).Return(nil)

		deleted, err := testService.Delete(ctx, kind, 3)
		require.NoError(t, err)
		assert.Equal(t, &existing, deleted)
		mockRepo.AssertCalled(t, "SoftDelete", ctx, kind, existing)
	})

	t.Run("Shadow Validation Failure", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		// A stored row that no longer satisfies the schema must not be
		// removed from the active table
		existing := recordFromValues(kind, validCosmeticValues())
		existing.ID = 3
		existing.SalesIncreasePercent = "45.5%"
		mockRepo.On("Get", ctx, kind, 3).Return(&existing, nil)

		_, err := testService.Delete(ctx, kind, 3)
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		testService := NewCollabService(mockRepo)

		mockRepo.On("Get", ctx, kind, 42).Return(nil, errors.New("record not found"))

		_, err := testService.Delete(ctx, kind, 42)
		require.Error(t, err)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		mockRepo.AssertNotCalled(t, "SoftDelete")
	})
}
