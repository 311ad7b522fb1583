package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/juryboard/juryboard/internal/models"
	"github.com/juryboard/juryboard/internal/scoring"
)

func TestJuryWorkbook(t *testing.T) {
	teams := []models.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}
	criteria := []string{"INNOVATION", "CREATIVITY"}
	marks := []models.Mark{
		{
			JuryName: "J1",
			TeamName: "Alpha",
			Criteria: models.ScoreMap{"INNOVATION": 15, "CREATIVITY": 10},
			Total:    25,
		},
	}

	buf, filename, err := JuryWorkbook("J1", teams, marks, criteria)
	require.NoError(t, err)
	assert.Equal(t, "J1_Marks.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "J1_Marks"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"S.No", "Team Name", "INNOVATION", "CREATIVITY", "Total"}, rows[0])
	assert.Equal(t, []string{"1", "Alpha", "15", "10", "25"}, rows[1])
	// unscored team renders as zeros
	assert.Equal(t, []string{"2", "Beta", "0", "0", "0"}, rows[2])
}

func TestLeaderboardWorkbook(t *testing.T) {
	leaderboard := scoring.Leaderboard{
		Juries: []string{"J1", "J2"},
		Ranked: []scoring.TeamStanding{
			{Rank: 1, TeamName: "Beta", JuryTotals: map[string]int{"J1": 20, "J2": 15}, GrandTotal: 35},
			{Rank: 2, TeamName: "Alpha", JuryTotals: map[string]int{"J1": 10, "J2": 5}, GrandTotal: 15},
			{Rank: 3, TeamName: "Gamma", JuryTotals: map[string]int{"J1": 4, "J2": 6}, GrandTotal: 10},
			{Rank: 4, TeamName: "Delta", JuryTotals: map[string]int{}, GrandTotal: 0},
		},
	}

	buf, filename, err := LeaderboardWorkbook(leaderboard)
	require.NoError(t, err)
	assert.Equal(t, "Final_Leaderboard.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Final_Leaderboard"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"Rank", "Team Name", "J1 Total", "J2 Total", "Grand Total"}, rows[0])
	assert.Equal(t, []string{"1", "Beta", "20", "15", "35"}, rows[1])
	assert.Equal(t, []string{"4", "Delta", "0", "0", "0"}, rows[4])

	// medal rows carry their own fills, plain rows share one bordered style
	gold, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	silver, err := f.GetCellStyle(sheet, "A3")
	require.NoError(t, err)
	plain, err := f.GetCellStyle(sheet, "A5")
	require.NoError(t, err)
	assert.NotEqual(t, gold, plain)
	assert.NotEqual(t, silver, plain)
	assert.NotEqual(t, gold, silver)
}
