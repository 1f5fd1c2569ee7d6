package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"friends-corner/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite test db: %v", err)
	}
	st := New(db)
	if err := st.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return st
}

func TestInitSchemaIdempotent(t *testing.T) {
	st := newTestStore(t)
	// second run must be safe
	require.NoError(t, st.InitSchema(context.Background()))
}

func TestPhotoListPartitions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p := &model.Photo{Title: "p", Date: "2026-07-04", UploadedBy: "Kim", ImageURL: "data:image/png;base64,x"}
		require.NoError(t, st.CreatePhoto(ctx, p))
		if i == 0 {
			require.NoError(t, st.ApprovePhoto(ctx, p.ID))
		}
	}

	all, err := st.ListPhotos(ctx, FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := st.ListPhotos(ctx, FilterApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	for _, p := range approved {
		assert.True(t, p.Approved)
	}

	pending, err := st.ListPhotos(ctx, FilterPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, p := range pending {
		assert.False(t, p.Approved)
	}
}

func TestSongCreateForcesUnapproved(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// a caller cannot smuggle in a pre-approved submission
	song := &model.Song{Title: "t", Artist: "a", YouTubeURL: "u", YouTubeID: "id", AddedBy: "Kim", Approved: true}
	require.NoError(t, st.CreateSong(ctx, song))

	got, err := st.GetSongByID(ctx, song.ID)
	require.NoError(t, err)
	assert.False(t, got.Approved)
}

func TestApproveIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	song := &model.Song{Title: "t", Artist: "a", YouTubeURL: "u", YouTubeID: "id", AddedBy: "Kim"}
	require.NoError(t, st.CreateSong(ctx, song))

	require.NoError(t, st.ApproveSong(ctx, song.ID))
	require.NoError(t, st.ApproveSong(ctx, song.ID))

	got, err := st.GetSongByID(ctx, song.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	assert.ErrorIs(t, st.ApproveSong(ctx, 9999), ErrNotFound)
}

func TestGetPhotoByIDIgnoresApproval(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p := &model.Photo{Title: "p", Date: "2026-07-04", UploadedBy: "Kim", ImageURL: "x"}
	require.NoError(t, st.CreatePhoto(ctx, p))

	// admin detail view sees pending rows
	got, err := st.GetPhotoByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Approved)

	_, err = st.GetPhotoByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberSoftDeleteHidesFromGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	m := &model.Member{Name: "Kim", Role: "Member"}
	require.NoError(t, st.CreateMember(ctx, m))
	require.NoError(t, st.RemoveMember(ctx, m.ID))

	_, err := st.GetMemberByID(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// updates also skip inactive rows
	_, err = st.UpdateMember(ctx, m.ID, map[string]interface{}{"bio": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	var (
		db   *sql.DB
		mock sqlmock.Sqlmock
		err  error
	)
	db, mock, err = sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open gorm over sqlmock: %v", err)
	}
	return New(gormDB), mock, func() { db.Close() }
}

func TestListSongsUnavailable(t *testing.T) {
	st, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "songs"`).
		WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

	_, err := st.ListSongs(context.Background(), FilterApproved)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDuplicateMemberMapped(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateMember(ctx, &model.Member{Name: "Kim"}))
	err := st.CreateMember(ctx, &model.Member{Name: "Kim"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
