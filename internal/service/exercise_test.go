package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repo"
	"exercise-tracker/internal/service"
)

// mockExerciseRepo is a hand-written test double for repo.ExerciseRepo.
type mockExerciseRepo struct {
	create     func(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	exists     func(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (bool, error)
	listByUser func(ctx context.Context, userID uuid.UUID, q domain.LogQuery) ([]domain.Exercise, error)
}

func (m *mockExerciseRepo) Create(ctx context.Context, e domain.Exercise) (domain.Exercise, error) {
	return m.create(ctx, e)
}
func (m *mockExerciseRepo) Exists(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (bool, error) {
	if m.exists != nil {
		return m.exists(ctx, userID, description, duration, date)
	}
	return false, nil
}
func (m *mockExerciseRepo) ListByUser(ctx context.Context, userID uuid.UUID, q domain.LogQuery) ([]domain.Exercise, error) {
	return m.listByUser(ctx, userID, q)
}

// compile-time check: mockExerciseRepo must satisfy repo.ExerciseRepo.
var _ repo.ExerciseRepo = (*mockExerciseRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// knownUser returns a mockUserRepo whose GetByID always finds the given user.
func knownUser(user domain.User) *mockUserRepo {
	return &mockUserRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.User, error) {
			return user, nil
		},
	}
}

// missingUser returns a mockUserRepo whose GetByID never finds anything.
func missingUser() *mockUserRepo {
	return &mockUserRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}
}

func validExercise(userID uuid.UUID) domain.Exercise {
	return domain.Exercise{
		UserID:      userID,
		Description: "morning run",
		Duration:    30,
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

// ---- Create ----------------------------------------------------------------

func TestExerciseService_Create_OK(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}
	input := validExercise(user.ID)
	stored := input
	stored.ID = uuid.New()

	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			create: func(_ context.Context, _ domain.Exercise) (domain.Exercise, error) {
				return stored, nil
			},
		},
	)

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.Exercise.ID)
	assert.Equal(t, "alice", got.User.Username)
}

func TestExerciseService_Create_UserNotFound(t *testing.T) {
	existsCalled := false

	svc := service.NewExerciseService(
		missingUser(),
		&mockExerciseRepo{
			exists: func(_ context.Context, _ uuid.UUID, _ string, _ int, _ time.Time) (bool, error) {
				existsCalled = true
				return false, nil
			},
		},
	)

	_, err := svc.Create(context.Background(), validExercise(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, existsCalled, "duplicate check should not run for an unknown user")
}

func TestExerciseService_Create_Duplicate(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}

	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			exists: func(_ context.Context, _ uuid.UUID, _ string, _ int, _ time.Time) (bool, error) {
				return true, nil
			},
		},
	)

	_, err := svc.Create(context.Background(), validExercise(user.ID))

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestExerciseService_Create_Validation(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name   string
		mutate func(*domain.Exercise)
	}{
		{"missing description", func(e *domain.Exercise) { e.Description = "" }},
		{"missing duration", func(e *domain.Exercise) { e.Duration = 0 }},
		{"duration over 180", func(e *domain.Exercise) { e.Duration = 181 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewExerciseService(knownUser(user), &mockExerciseRepo{})

			input := validExercise(user.ID)
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExerciseService_Create_DateDefaultsToNow(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}

	var captured domain.Exercise
	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			create: func(_ context.Context, e domain.Exercise) (domain.Exercise, error) {
				captured = e
				return e, nil
			},
		},
	)

	input := validExercise(user.ID)
	input.Date = time.Time{}

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), captured.Date, 2*time.Second)
}

// ---- Log -------------------------------------------------------------------

func TestExerciseService_Log_UserNotFound(t *testing.T) {
	listCalled := false

	svc := service.NewExerciseService(
		missingUser(),
		&mockExerciseRepo{
			listByUser: func(_ context.Context, _ uuid.UUID, _ domain.LogQuery) ([]domain.Exercise, error) {
				listCalled = true
				return nil, nil
			},
		},
	)

	_, err := svc.Log(context.Background(), uuid.New(), domain.NewLogQuery("", "", ""))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, listCalled, "exercise query should not run for an unknown user")
}

func TestExerciseService_Log_EmptyLog(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}

	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			listByUser: func(_ context.Context, _ uuid.UUID, _ domain.LogQuery) ([]domain.Exercise, error) {
				return nil, nil
			},
		},
	)

	_, err := svc.Log(context.Background(), user.ID, domain.NewLogQuery("", "", ""))

	assert.ErrorIs(t, err, domain.ErrEmptyLog)
	assert.NotErrorIs(t, err, domain.ErrNotFound, "empty log must stay distinct from a missing user")
}

func TestExerciseService_Log_MapsEntries(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}
	exercises := []domain.Exercise{
		{UserID: user.ID, Description: "swim", Duration: 45, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, Description: "run", Duration: 30, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			listByUser: func(_ context.Context, _ uuid.UUID, _ domain.LogQuery) ([]domain.Exercise, error) {
				return exercises, nil
			},
		},
	)

	q := domain.NewLogQuery("2024-01-01", "2024-01-31", "")
	got, err := svc.Log(context.Background(), user.ID, q)

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Entries, 2)

	// Repo order (date descending) is preserved, dates rendered as text.
	assert.Equal(t, domain.LogEntry{Description: "swim", Duration: 45, Date: "Wed Jan 10 2024"}, got.Entries[0])
	assert.Equal(t, domain.LogEntry{Description: "run", Duration: 30, Date: "Mon Jan 01 2024"}, got.Entries[1])

	assert.Equal(t, q, got.Query, "resolved query travels with the log for response shaping")
}

func TestExerciseService_Log_PassesQueryToRepo(t *testing.T) {
	user := domain.User{ID: uuid.New(), Username: "alice"}

	var captured domain.LogQuery
	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			listByUser: func(_ context.Context, _ uuid.UUID, q domain.LogQuery) ([]domain.Exercise, error) {
				captured = q
				return []domain.Exercise{{Date: time.Now()}}, nil
			},
		},
	)

	q := domain.NewLogQuery("2024-01-05", "2024-01-31", "3")
	_, err := svc.Log(context.Background(), user.ID, q)

	require.NoError(t, err)
	assert.Equal(t, q, captured)
}

func TestExerciseService_Log_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	user := domain.User{ID: uuid.New(), Username: "alice"}

	svc := service.NewExerciseService(
		knownUser(user),
		&mockExerciseRepo{
			listByUser: func(_ context.Context, _ uuid.UUID, _ domain.LogQuery) ([]domain.Exercise, error) {
				return nil, repoErr
			},
		},
	)

	_, err := svc.Log(context.Background(), user.ID, domain.NewLogQuery("", "", ""))

	assert.ErrorIs(t, err, repoErr)
}
