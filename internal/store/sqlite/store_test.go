// internal/store/sqlite/store_test.go
package sqlite

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juryboard/juryboard/internal/models"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	s, err := NewSQLiteStore(":memory:", "../../../migrations")
	require.NoError(t, err, "Failed to create store")

	cleanup := func() {
		err := s.Close()
		require.NoError(t, err, "Failed to close database")
	}

	return s, cleanup
}

func TestMain(m *testing.M) {
	log.Println("Starting SQLite store tests...")
	code := m.Run()
	log.Println("Finished SQLite store tests")
	os.Exit(code)
}

func TestJuryOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("create and get jury", func(t *testing.T) {
		err := s.CreateJury(&models.Jury{Name: "J1"})
		require.NoError(t, err)

		got, err := s.GetJury("J1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "J1", got.Name)
		assert.False(t, got.HasSubmitted)
		assert.False(t, got.Paused)
		assert.Nil(t, got.SubmittedAt)
	})

	t.Run("get non-existent jury", func(t *testing.T) {
		got, err := s.GetJury("nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		err := s.CreateJury(&models.Jury{Name: "J1"})
		assert.Error(t, err)
	})

	t.Run("upsert updates an existing jury", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).Unix()
		jury, err := s.UpsertJuryStatus("J1", true, false, &now)
		require.NoError(t, err)
		require.NotNil(t, jury)
		assert.True(t, jury.HasSubmitted)
		require.NotNil(t, jury.SubmittedAt)
		assert.Equal(t, now, *jury.SubmittedAt)
	})

	t.Run("upsert creates a missing jury", func(t *testing.T) {
		jury, err := s.UpsertJuryStatus("J2", false, true, nil)
		require.NoError(t, err)
		require.NotNil(t, jury)
		assert.True(t, jury.Paused)
		assert.Nil(t, jury.SubmittedAt)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		juries, err := s.ListJuries()
		require.NoError(t, err)
		require.Len(t, juries, 2)
		assert.Equal(t, "J1", juries[0].Name)
		assert.Equal(t, "J2", juries[1].Name)
	})

	t.Run("delete jury", func(t *testing.T) {
		require.NoError(t, s.DeleteJury("J2"))
		got, err := s.GetJury("J2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTeamOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	team := models.Team{Name: "Alpha", Category: "Software"}

	t.Run("create assigns an id", func(t *testing.T) {
		err := s.CreateTeam(&team)
		require.NoError(t, err)
		assert.NotZero(t, team.ID)
	})

	t.Run("get by id and by name", func(t *testing.T) {
		byID, err := s.GetTeam(team.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "Alpha", byID.Name)

		byName, err := s.GetTeamByName("Alpha")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, team.ID, byName.ID)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := s.UpdateTeam(&models.Team{ID: team.ID, Name: "Alpha Prime", Category: "Hardware"})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Alpha Prime", updated.Name)
		assert.Equal(t, "Hardware", updated.Category)
	})

	t.Run("update of unknown id reports missing", func(t *testing.T) {
		updated, err := s.UpdateTeam(&models.Team{ID: 9999, Name: "Ghost"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("list in insertion order", func(t *testing.T) {
		require.NoError(t, s.CreateTeam(&models.Team{Name: "Beta"}))
		teams, err := s.ListTeams()
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Alpha Prime", teams[0].Name)
		assert.Equal(t, "Beta", teams[1].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteTeam(team.ID))
		got, err := s.GetTeam(team.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMarkOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	batch1 := []models.Mark{
		{
			JuryName: "J1",
			TeamName: "Alpha",
			Criteria: models.ScoreMap{"INNOVATION": 15, "CREATIVITY": 10},
			Total:    25,
		},
		{
			JuryName: "J1",
			TeamName: "Beta",
			Criteria: models.ScoreMap{"INNOVATION": 8, "CREATIVITY": 12},
			Total:    20,
		},
	}

	t.Run("replace inserts a fresh batch", func(t *testing.T) {
		require.NoError(t, s.ReplaceJuryMarks("J1", batch1))

		marks, err := s.ListJuryMarks("J1")
		require.NoError(t, err)
		require.Len(t, marks, 2)
		assert.Equal(t, "Alpha", marks[0].TeamName)
		assert.Equal(t, models.ScoreMap{"INNOVATION": 15, "CREATIVITY": 10}, marks[0].Criteria)
		assert.Equal(t, 25, marks[0].Total)
	})

	t.Run("resubmission replaces, not merges", func(t *testing.T) {
		batch2 := []models.Mark{
			{
				JuryName: "J1",
				TeamName: "Gamma",
				Criteria: models.ScoreMap{"INNOVATION": 5},
				Total:    5,
			},
		}
		require.NoError(t, s.ReplaceJuryMarks("J1", batch2))

		marks, err := s.ListJuryMarks("J1")
		require.NoError(t, err)
		require.Len(t, marks, 1)
		assert.Equal(t, "Gamma", marks[0].TeamName)
	})

	t.Run("other juries are untouched", func(t *testing.T) {
		require.NoError(t, s.ReplaceJuryMarks("J2", batch1[:1]))
		require.NoError(t, s.ReplaceJuryMarks("J1", nil))

		marks, err := s.ListJuryMarks("J2")
		require.NoError(t, err)
		assert.Len(t, marks, 1)

		all, err := s.ListMarks()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("duplicate team within a batch is rejected", func(t *testing.T) {
		dupe := []models.Mark{
			{JuryName: "J3", TeamName: "Alpha", Criteria: models.ScoreMap{}, Total: 0},
			{JuryName: "J3", TeamName: "Alpha", Criteria: models.ScoreMap{}, Total: 0},
		}
		err := s.ReplaceJuryMarks("J3", dupe)
		require.Error(t, err)

		// failed batch must not leave partial rows behind
		marks, errList := s.ListJuryMarks("J3")
		require.NoError(t, errList)
		assert.Empty(t, marks)
	})
}

func TestSettingsOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	defaults := models.Settings{
		Criteria:             models.CriteriaList{"INNOVATION", "CREATIVITY"},
		MaxMarksPerCriterion: 20,
		CompetitionName:      "College Competition",
		CollegeName:          "Test College",
		ClubName:             "Test Club",
	}

	t.Run("missing row reads as nil", func(t *testing.T) {
		settings, err := s.GetSettings()
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("ensure creates the row once", func(t *testing.T) {
		require.NoError(t, s.EnsureSettings(defaults))

		settings, err := s.GetSettings()
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, defaults.Criteria, settings.Criteria)
		assert.Equal(t, 20, settings.MaxMarksPerCriterion)
	})

	t.Run("ensure does not clobber a saved row", func(t *testing.T) {
		saved := defaults
		saved.MaxMarksPerCriterion = 50
		require.NoError(t, s.SaveSettings(&saved))

		require.NoError(t, s.EnsureSettings(defaults))

		settings, err := s.GetSettings()
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, 50, settings.MaxMarksPerCriterion)
	})
}
