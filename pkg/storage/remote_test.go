package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos/lifeos/internal/test_utils"
	"github.com/lifeos/lifeos/internal/utils"
)

var db *sql.DB

func TestMain(m *testing.M) {
	container, connect := test_utils.TestWithDB()
	db = connect()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func setupPostgresStore() (*PostgresStore, *utils.MockClock) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return NewPostgresStore(db, clock), clock
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	// given
	store, _ := setupPostgresStore()
	ctx := context.Background()
	doc := []byte(`{"missionStatement":"persisted"}`)

	// when
	err := store.Save(ctx, "user-roundtrip", doc)

	// then
	require.NoError(t, err)
	loaded, found, err := store.Load(ctx, "user-roundtrip")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, string(doc), string(loaded))
}

func TestPostgresStore_SaveOverwritesExistingRecord(t *testing.T) {
	// given
	store, clock := setupPostgresStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-upsert", []byte(`{"missionStatement":"first"}`)))

	// when
	clock.SetNow(clock.Now().Add(time.Hour))
	require.NoError(t, store.Save(ctx, "user-upsert", []byte(`{"missionStatement":"second"}`)))

	// then
	loaded, found, err := store.Load(ctx, "user-upsert")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"missionStatement":"second"}`, string(loaded))
}

func TestPostgresStore_LoadMissingRecordIsNotAnError(t *testing.T) {
	// given
	store, _ := setupPostgresStore()

	// when
	doc, found, err := store.Load(context.Background(), "user-without-record")

	// then
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, doc)
}

func TestPostgresStore_RecordsAreIsolatedPerUser(t *testing.T) {
	// given
	store, _ := setupPostgresStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-a", []byte(`{"missionStatement":"a"}`)))
	require.NoError(t, store.Save(ctx, "user-b", []byte(`{"missionStatement":"b"}`)))

	// when
	loaded, found, err := store.Load(ctx, "user-a")

	// then
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"missionStatement":"a"}`, string(loaded))
}
