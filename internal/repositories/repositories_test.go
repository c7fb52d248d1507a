package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *DbContext {
	t.Helper()
	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func Test_Data_Load_WhenKeyMissing_ShouldReturnNil(t *testing.T) {
	data := NewDataRepository(newTestDb(t).DB)

	value, err := data.Load(context.Background(), "job_hunter_resume")

	require.NoError(t, err)
	assert.Nil(t, value)
}

func Test_Data_SaveOverwriteRemove(t *testing.T) {
	ctx := context.Background()
	data := NewDataRepository(newTestDb(t).DB)

	require.NoError(t, data.Save(ctx, "job_hunter_saved_jobs", []byte(`["a"]`)))
	require.NoError(t, data.Save(ctx, "job_hunter_saved_jobs", []byte(`["a","b"]`)))

	value, err := data.Load(ctx, "job_hunter_saved_jobs")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(value))

	require.NoError(t, data.Remove(ctx, "job_hunter_saved_jobs"))
	value, err = data.Load(ctx, "job_hunter_saved_jobs")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func Test_Searches_AddAndQuery(t *testing.T) {
	ctx := context.Background()
	searches := NewSearchRepository(newTestDb(t).DB)

	minScore := 70
	remote := models.NewSavedSearch("remote go", models.JobFilter{
		Keywords:      "go",
		WorkType:      []models.WorkType{models.Remote},
		MinMatchScore: &minScore,
	}, true)
	quiet := models.NewSavedSearch("quiet", models.JobFilter{}, false)

	require.NoError(t, searches.Add(ctx, remote))
	require.NoError(t, searches.Add(ctx, quiet))

	all, err := searches.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	alerting, err := searches.GetAlertEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, alerting, 1)
	assert.Equal(t, remote.ID, alerting[0].ID)
	assert.Equal(t, remote.Filters, alerting[0].Filters)

	require.NoError(t, searches.SetAlertEnabled(ctx, quiet.ID, true))
	alerting, err = searches.GetAlertEnabled(ctx)
	require.NoError(t, err)
	assert.Len(t, alerting, 2)
}

func Test_Searches_Remove_WhenMissing_ShouldReturnNotFound(t *testing.T) {
	searches := NewSearchRepository(newTestDb(t).DB)

	err := searches.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSearchNotFound)

	_, err = searches.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSearchNotFound)
}

func Test_Alerts_RecordAlerted_ShouldBeIdempotent(t *testing.T) {
	ctx := context.Background()
	alerts := NewAlertsRepository(newTestDb(t).DB)

	alerted, err := alerts.WasAlerted(ctx, "search", "job-1")
	require.NoError(t, err)
	assert.False(t, alerted)

	require.NoError(t, alerts.RecordAlerted(ctx, "search", "job-1"))
	require.NoError(t, alerts.RecordAlerted(ctx, "search", "job-1"))

	alerted, err = alerts.WasAlerted(ctx, "search", "job-1")
	require.NoError(t, err)
	assert.True(t, alerted)

	alerted, err = alerts.WasAlerted(ctx, "other", "job-1")
	require.NoError(t, err)
	assert.False(t, alerted)
}

func Test_Alerts_RemoveOlderThan(t *testing.T) {
	ctx := context.Background()
	alerts := NewAlertsRepository(newTestDb(t).DB)

	require.NoError(t, alerts.RecordAlerted(ctx, "search", "job-1"))

	removed, err := alerts.RemoveOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = alerts.RemoveOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
