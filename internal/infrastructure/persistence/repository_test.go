package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(sqliteDSN("file::memory:")), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	// In-memory sqlite gives each connection its own database
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := &Database{DB: gormDB}
	require.NoError(t, db.Migrate())
	return db
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.Enterprise](db.DB)
	ctx := context.Background()

	enterprise := registry.NewEnterprise("Acme", "An enterprise for testing", "gpt-4", "admin")
	require.NoError(t, repo.Create(ctx, enterprise))
	assert.NotZero(t, enterprise.ID)
	assert.False(t, enterprise.CreatedAt.IsZero())
	assert.Nil(t, enterprise.UpdatedAt)

	found, err := repo.FindByID(ctx, enterprise.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.Name)
	assert.Equal(t, "gpt-4", found.IAModel)
	assert.True(t, found.Active)
	assert.Equal(t, "admin", found.CreatedBy)
}

func TestRepository_FindByID_Absent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.Enterprise](db.DB)

	found, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_FindAll_IncludesInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.Tool](db.DB)
	ctx := context.Background()

	active := registry.NewTool("translator", "Translates text between languages", "/tools/translate", "")
	inactive := registry.NewTool("summarizer", "Summarizes long documents", "/tools/summarize", "")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))
	require.NoError(t, repo.LogicalDelete(ctx, inactive))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_Update_Partial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.Agent](db.DB)
	ctx := context.Background()

	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	require.NoError(t, repo.Create(ctx, agent))

	updated, err := repo.Update(ctx, agent, map[string]any{"name": "assistant"})
	require.NoError(t, err)
	assert.Equal(t, "assistant", updated.Name)
	// Columns absent from the change set keep their prior values
	assert.Equal(t, "Answers support questions", updated.Description)
	require.NotNil(t, updated.UpdatedAt)
}

func TestRepository_Update_EmptyChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.Agent](db.DB)
	ctx := context.Background()

	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	require.NoError(t, repo.Create(ctx, agent))

	updated, err := repo.Update(ctx, agent, map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, updated.UpdatedAt)
}

func TestRepository_LogicalDelete_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.IAGroup](db.DB)
	ctx := context.Background()

	group := registry.NewIAGroup("support", "Agents handling support requests", "")
	require.NoError(t, repo.Create(ctx, group))

	require.NoError(t, repo.LogicalDelete(ctx, group))
	assert.False(t, group.IsActive())

	afterFirst, err := repo.FindByID(ctx, group.ID)
	require.NoError(t, err)
	require.NotNil(t, afterFirst.UpdatedAt)
	firstStamp := *afterFirst.UpdatedAt

	// Second delete is a no-op and leaves updated_at untouched
	require.NoError(t, repo.LogicalDelete(ctx, afterFirst))

	afterSecond, err := repo.FindByID(ctx, group.ID)
	require.NoError(t, err)
	require.NotNil(t, afterSecond.UpdatedAt)
	assert.True(t, afterSecond.UpdatedAt.Equal(firstStamp))
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository[registry.User](db.DB)
	ctx := context.Background()

	user, err := registry.NewUser("operator", "op@example.com", "s3cret-pass", "", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_SatisfiesDomainInterface(t *testing.T) {
	db := setupTestDB(t)
	var repo shared.Repository[registry.Enterprise] = NewRepository[registry.Enterprise](db.DB)
	assert.NotNil(t, repo)
}

// newMockDB creates a GORM connection backed by sqlmock for failure-path tests
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestRepository_FindAll_StorageFailure(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "enterprises"`).WillReturnError(sql.ErrConnDone)

	repo := NewRepository[registry.Enterprise](gormDB)
	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
