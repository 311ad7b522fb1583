package scoring

import (
	"sort"

	"github.com/juryboard/juryboard/internal/models"
)

type TeamStanding struct {
	Rank       int            `json:"rank"`
	TeamName   string         `json:"teamName"`
	Category   string         `json:"category"`
	JuryTotals map[string]int `json:"juryTotals"`
	GrandTotal int            `json:"grandTotal"`
}

type Leaderboard struct {
	Ranked []TeamStanding `json:"leaderboard"`
	Juries []string       `json:"juries"`
}

const (
	StatusSubmitted = "Submitted"
	StatusPaused    = "Paused"
	StatusPending   = "Pending"
)

// StatusFor collapses the two stored jury flags into one status.
// HasSubmitted wins over Paused when both are set.
func StatusFor(jury models.Jury) string {
	switch {
	case jury.HasSubmitted:
		return StatusSubmitted
	case jury.Paused:
		return StatusPaused
	default:
		return StatusPending
	}
}

type JuryStatus struct {
	JuryName    string `json:"juryName"`
	Status      string `json:"status"`
	SubmittedAt *int64 `json:"submittedAt"`
}

func SubmissionStatus(juries []models.Jury) []JuryStatus {
	statuses := make([]JuryStatus, len(juries))
	for i, jury := range juries {
		statuses[i] = JuryStatus{
			JuryName:    jury.Name,
			Status:      StatusFor(jury),
			SubmittedAt: jury.SubmittedAt,
		}
	}
	return statuses
}

// ComputeLeaderboard folds all marks into ranked standings. A jury with no
// mark for a team contributes 0, so partial results are always visible.
// Teams sort by grand total descending, ties by team name ascending, and
// ranks run 1..N with no sharing.
func ComputeLeaderboard(teams []models.Team, juries []models.Jury, marks []models.Mark) Leaderboard {
	type key struct {
		jury string
		team string
	}

	totals := make(map[key]int, len(marks))
	for _, mark := range marks {
		totals[key{mark.JuryName, mark.TeamName}] = mark.Total
	}

	juryNames := make([]string, len(juries))
	for i, jury := range juries {
		juryNames[i] = jury.Name
	}

	ranked := make([]TeamStanding, len(teams))
	for i, team := range teams {
		standing := TeamStanding{
			TeamName:   team.Name,
			Category:   team.Category,
			JuryTotals: make(map[string]int, len(juries)),
		}
		for _, jury := range juries {
			score := totals[key{jury.Name, team.Name}]
			standing.JuryTotals[jury.Name] = score
			standing.GrandTotal += score
		}
		ranked[i] = standing
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GrandTotal != ranked[j].GrandTotal {
			return ranked[i].GrandTotal > ranked[j].GrandTotal
		}
		return ranked[i].TeamName < ranked[j].TeamName
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return Leaderboard{Ranked: ranked, Juries: juryNames}
}
