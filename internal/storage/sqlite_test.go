package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// Deterministic, strictly increasing timestamps.
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveRun(core.RunStats{LevelID: "city", Score: score})
		require.NoError(t, err)
	}
	_, err := store.SaveRun(core.RunStats{LevelID: "training", Score: 500})
	require.NoError(t, err)

	runs, err := store.TopRuns("city", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, []int{200, 100, 50}, []int{runs[0].Score, runs[1].Score, runs[2].Score})
	for _, r := range runs {
		assert.Equal(t, "city", r.LevelID)
		assert.False(t, r.CreatedAt.IsZero())
	}
}

func TestStoreRunFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(core.RunStats{
		LevelID: "city",
		Score:   450,
		Coins:   7,
		Defeats: 2,
		Elapsed: 180,
		TimeUp:  true,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	runs, err := store.TopRuns("city", 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	r := runs[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, 7, r.Coins)
	assert.Equal(t, 2, r.Defeats)
	assert.Equal(t, 180.0, r.Duration)
	assert.True(t, r.TimeUp)
}

func TestStoreSaveRunRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(core.RunStats{Score: 10})
	assert.ErrorContains(t, err, "storage:")
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveRun(core.RunStats{LevelID: "city", Score: i * 10})
		require.NoError(t, err)
	}

	runs, err := store.TopRuns("city", 5)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	assert.Equal(t, 190, runs[0].Score)

	runs, err = store.TopRuns("city", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 10, "non-positive limit falls back to 10")
}

func TestStoreTiesKeepEarlierRunFirst(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun(core.RunStats{LevelID: "city", Score: 100})
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunStats{LevelID: "city", Score: 100})
	require.NoError(t, err)

	runs, err := store.TopRuns("city", 2)
	require.NoError(t, err)
	assert.Equal(t, first, runs[0].ID)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("city")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveRun(core.RunStats{LevelID: "city", Score: score})
		require.NoError(t, err)
	}

	high, err = store.HighScore("city")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(core.RunStats{LevelID: "city", Score: 100})
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunStats{LevelID: "training", Score: 300})
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns("city"))

	runs, err := store.TopRuns("city", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	runs, err = store.TopRuns("training", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, lvl := range []string{"city", "training", "city"} {
		_, err := store.SaveRun(core.RunStats{LevelID: lvl})
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "city", runs[0].LevelID)
	assert.Equal(t, "training", runs[1].LevelID)
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("city")
	require.NoError(t, err)
	assert.Zero(t, empty.Runs)
	assert.True(t, empty.LastPlayed.IsZero())

	_, err = store.SaveRun(core.RunStats{LevelID: "city", Score: 100, Coins: 2, TimeUp: true})
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunStats{LevelID: "city", Score: 300, Coins: 6})
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunStats{LevelID: "training", Score: 50, Coins: 1, TimeUp: true})
	require.NoError(t, err)

	stats, err := store.GetLevelStats("city")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.Equal(t, 8, stats.TotalCoins)
	assert.Equal(t, 1, stats.Completed)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllLevelStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["training"].Runs)
	assert.Equal(t, 50, all["training"].HighScore)
}
