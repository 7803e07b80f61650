package repositories

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProductRepository_FindAllExcludesByEquality(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProductRepository()

	testutil.CreateProduct(t, db, "p-1", "Mug", 1299)
	testutil.CreateProduct(t, db, "p-10", "Tee", 2499)
	testutil.CreateProduct(t, db, "p-2", "Cap", 1850)

	all, err := repo.FindAll(db, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p-1", "p-10", "p-2"}, productIDs(all))

	// "p-1" исключает только товар с id ровно "p-1", а не "p-10"
	filtered, err := repo.FindAll(db, "p-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p-10", "p-2"}, productIDs(filtered))

	none, err := repo.FindAll(db, "unknown")
	require.NoError(t, err)
	assert.Len(t, none, 3)
}

func TestProductRepository_FindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProductRepository()
	testutil.CreateProduct(t, db, "p-1", "Mug", 1299)

	p, err := repo.FindByID(db, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, int64(1299), p.Price)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	ok, err := repo.Exists(db, "p-1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(db, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_ConnectOrCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	user, created, err := repo.ConnectOrCreate(db, &models.User{ID: "user_1", Name: "Ada Lovelace", Image: "a.png"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Ada Lovelace", user.Name)

	// повторный вызов связывает с существующей строкой и не меняет ее
	user, created, err = repo.ConnectOrCreate(db, &models.User{ID: "user_1", Name: "Renamed", Image: "b.png"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "a.png", user.Image)

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.User{}))

	_, err = repo.FindByID(db, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReviewRepository_FindAllWithUserNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReviewRepository()

	testutil.CreateProduct(t, db, "p-1", "Mug", 1299)
	testutil.CreateUser(t, db, "user_1", "Ada")
	testutil.CreateUser(t, db, "user_2", "Bob")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := testutil.CreateReview(t, db, "p-1", "user_1", 3, "ok", base)
	newest := testutil.CreateReview(t, db, "p-1", "user_2", 5, "great", base.Add(2*time.Hour))
	middle := testutil.CreateReview(t, db, "p-1", "user_1", 4, "good", base.Add(time.Hour))

	reviews, err := repo.FindAllWithUser(db)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID},
		[]string{reviews[0].ID, reviews[1].ID, reviews[2].ID})
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, "Bob", reviews[0].User.Name)
	assert.Equal(t, "Ada", reviews[2].User.Name)
}

func TestReviewRepository_CreateReview(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReviewRepository()
	testutil.CreateProduct(t, db, "p-1", "Mug", 1299)
	testutil.CreateUser(t, db, "user_1", "Ada")

	review := &models.Review{ProductID: "p-1", UserID: "user_1", Rating: 5, Comment: "nice"}
	require.NoError(t, repo.CreateReview(db, review))
	assert.NotEmpty(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero())

	// CHECK на уровне БД - вторая линия после валидации входа
	bad := &models.Review{ProductID: "p-1", UserID: "user_1", Rating: 9}
	assert.Error(t, repo.CreateReview(db, bad))
}
