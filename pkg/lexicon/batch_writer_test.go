package lexicon

import (
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/lyricvocab/pkg/db"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.InitDB(conn))
	t.Cleanup(func() { conn.Close() })
	return conn
}

func countLexemes(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM lexemes").Scan(&n))
	return n
}

func closeWithin(t *testing.T, bw *BatchWriter, d time.Duration) error {
	t.Helper()
	doneCh := make(chan error, 1)
	go func() { doneCh <- bw.Close() }()
	select {
	case err := <-doneCh:
		return err
	case <-time.After(d):
		t.Fatal("timeout waiting for batch commit/close")
		return nil
	}
}

func TestBatchWriterTransactions(t *testing.T) {
	conn := setupDB(t)

	bw := NewBatchWriter(conn, "ngsl", 2, 0)
	require.NoError(t, bw.Submit(Entry{Word: "harbor", Rank: 1200, Tier: 3}))
	require.NoError(t, bw.Submit(Entry{Word: "lantern", Rank: 2500, Tier: 4}))
	require.NoError(t, bw.Submit(Entry{Word: "tide", Rank: 900, Tier: 2}))

	require.NoError(t, closeWithin(t, bw, time.Second))
	assert.Equal(t, 3, bw.Written())
	assert.Equal(t, 3, countLexemes(t, conn))

	lx, ok, err := db.LookupLexeme(conn, "lantern")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ngsl", lx.List)
	assert.Equal(t, 4, lx.Tier)
}

func TestBatchWriterRollback(t *testing.T) {
	conn := setupDB(t)

	bw := NewBatchWriter(conn, "ngsl", 2, 0)
	errCh := make(chan error, 1)
	bw.OnError = func(e error) { errCh <- e }

	// Batch of 2: the second entry has an impossible tier, so the whole batch rolls back.
	require.NoError(t, bw.Submit(Entry{Word: "harbor", Rank: 1200, Tier: 3}))
	require.NoError(t, bw.Submit(Entry{Word: "broken", Rank: 1, Tier: 9}))

	err := bw.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	select {
	case e := <-errCh:
		assert.Error(t, e)
	default:
		t.Fatal("expected OnError to be called")
	}
	assert.Zero(t, countLexemes(t, conn))
	assert.Zero(t, bw.Written())
}

func TestBatchWriterFlushesBySize(t *testing.T) {
	conn := setupDB(t)

	bw := NewBatchWriter(conn, "ngsl", 5, 0)
	var called atomic.Int32
	bw.upsert = func(tx db.DBExecutor, list string, e Entry) error {
		called.Add(1)
		return nil
	}
	for i := 0; i < 12; i++ {
		require.NoError(t, bw.Submit(Entry{Word: fmt.Sprintf("w%d", i), Rank: i + 1, Tier: 1}))
	}
	require.NoError(t, bw.Close())
	assert.Equal(t, int32(12), called.Load())
	assert.Equal(t, 12, bw.Written())
}

func TestBatchWriterFlushesOnInterval(t *testing.T) {
	conn := setupDB(t)

	bw := NewBatchWriter(conn, "ngsl", 10, 20*time.Millisecond)
	require.NoError(t, bw.Submit(Entry{Word: "harbor", Rank: 1200, Tier: 3}))

	assert.Eventually(t, func() bool { return bw.Written() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, bw.Close())
}

func TestBatchWriterSubmitAfterClose(t *testing.T) {
	conn := setupDB(t)

	bw := NewBatchWriter(conn, "ngsl", 2, 0)
	require.NoError(t, bw.Close())
	assert.Equal(t, ErrBatchWriterClosed, bw.Submit(Entry{Word: "late", Rank: 1, Tier: 1}))
	assert.Equal(t, ErrBatchWriterClosed, bw.Close())
}

func TestBatchWriterDropsBatchOnCancel(t *testing.T) {
	conn := setupDB(t)

	// Small batches so every Submit produces one.
	bw := NewBatchWriter(conn, "ngsl", 1, 0)
	errCh := make(chan error, 4)
	bw.OnError = func(e error) { errCh <- e }

	blocker := make(chan struct{})
	started := make(chan struct{})
	var first atomic.Bool
	bw.upsert = func(tx db.DBExecutor, list string, e Entry) error {
		if first.CompareAndSwap(false, true) {
			close(started)
			<-blocker
		}
		return nil
	}

	// First batch occupies the committer.
	require.NoError(t, bw.Submit(Entry{Word: "a", Rank: 1, Tier: 1}))
	<-started
	// Two more fill the commit queue.
	require.NoError(t, bw.Submit(Entry{Word: "b", Rank: 2, Tier: 1}))
	require.NoError(t, bw.Submit(Entry{Word: "c", Rank: 3, Tier: 1}))

	// With the queue full and the writer canceled, the next batch is dropped.
	bw.cancel()
	require.NoError(t, bw.Submit(Entry{Word: "d", Rank: 4, Tier: 1}))

	close(blocker)
	err := bw.Close()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "dropping batch"))

	select {
	case e := <-errCh:
		assert.Contains(t, e.Error(), "dropping batch")
	case <-time.After(time.Second):
		t.Fatal("expected OnError to be called")
	}
}
