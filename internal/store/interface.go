package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/juryboard/juryboard/internal/models"
)

type MarkingStore interface {
	Close() error
	ApplyMigrations(dir string) error

	ListJuries() ([]models.Jury, error)
	GetJury(name string) (*models.Jury, error)
	CreateJury(jury *models.Jury) error
	UpsertJuryStatus(name string, hasSubmitted, paused bool, submittedAt *int64) (*models.Jury, error)
	DeleteJury(name string) error

	ListTeams() ([]models.Team, error)
	GetTeam(id int64) (*models.Team, error)
	GetTeamByName(name string) (*models.Team, error)
	CreateTeam(team *models.Team) error
	UpdateTeam(team *models.Team) (*models.Team, error)
	DeleteTeam(id int64) error

	ListMarks() ([]models.Mark, error)
	ListJuryMarks(juryName string) ([]models.Mark, error)
	ReplaceJuryMarks(juryName string, marks []models.Mark) error

	GetSettings() (*models.Settings, error)
	SaveSettings(settings *models.Settings) error
	EnsureSettings(defaults models.Settings) error
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) ListJuries() ([]models.Jury, error) {
	// non-nil so an empty table serializes as [] rather than null
	juries := []models.Jury{}
	err := s.DB.Select(&juries, `
		SELECT name, has_submitted, paused, submitted_at
		FROM juries
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list juries: %w", err)
	}
	return juries, nil
}

func (s *BaseStore) GetJury(name string) (*models.Jury, error) {
	var jury models.Jury
	query := s.Converter(`
		SELECT name, has_submitted, paused, submitted_at
		FROM juries
		WHERE name = ?
	`)

	err := s.DB.Get(&jury, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jury: %w", err)
	}
	return &jury, nil
}

func (s *BaseStore) CreateJury(jury *models.Jury) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO juries (name, has_submitted, paused, submitted_at)
		VALUES (:name, :has_submitted, :paused, :submitted_at)
	`, jury)
	if err != nil {
		return fmt.Errorf("failed to create jury: %w", err)
	}
	return nil
}

// UpsertJuryStatus overwrites a jury's lifecycle flags, creating the record
// if it does not exist yet. This is the save path for both admin status
// edits and the automatic flip on mark submission.
func (s *BaseStore) UpsertJuryStatus(name string, hasSubmitted, paused bool, submittedAt *int64) (*models.Jury, error) {
	query := s.Converter(`
		INSERT INTO juries (name, has_submitted, paused, submitted_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		has_submitted = excluded.has_submitted,
		paused = excluded.paused,
		submitted_at = excluded.submitted_at
	`)

	if _, err := s.DB.Exec(query, name, hasSubmitted, paused, submittedAt); err != nil {
		return nil, fmt.Errorf("failed to upsert jury status: %w", err)
	}
	return s.GetJury(name)
}

func (s *BaseStore) DeleteJury(name string) error {
	query := s.Converter(`DELETE FROM juries WHERE name = ?`)
	if _, err := s.DB.Exec(query, name); err != nil {
		return fmt.Errorf("failed to delete jury: %w", err)
	}
	return nil
}

func (s *BaseStore) ListTeams() ([]models.Team, error) {
	teams := []models.Team{}
	err := s.DB.Select(&teams, `
		SELECT id, name, category
		FROM teams
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *BaseStore) GetTeam(id int64) (*models.Team, error) {
	var team models.Team
	query := s.Converter(`SELECT id, name, category FROM teams WHERE id = ?`)

	err := s.DB.Get(&team, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (s *BaseStore) GetTeamByName(name string) (*models.Team, error) {
	var team models.Team
	query := s.Converter(`SELECT id, name, category FROM teams WHERE name = ?`)

	err := s.DB.Get(&team, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}
	return &team, nil
}

func (s *BaseStore) UpdateTeam(team *models.Team) (*models.Team, error) {
	query := s.Converter(`UPDATE teams SET name = ?, category = ? WHERE id = ?`)

	res, err := s.DB.Exec(query, team.Name, team.Category, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}
	return s.GetTeam(team.ID)
}

func (s *BaseStore) DeleteTeam(id int64) error {
	query := s.Converter(`DELETE FROM teams WHERE id = ?`)
	if _, err := s.DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *BaseStore) ListMarks() ([]models.Mark, error) {
	marks := []models.Mark{}
	err := s.DB.Select(&marks, `
		SELECT jury_name, team_name, criteria, total
		FROM marks
		ORDER BY jury_name, team_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}
	return marks, nil
}

func (s *BaseStore) ListJuryMarks(juryName string) ([]models.Mark, error) {
	marks := []models.Mark{}
	query := s.Converter(`
		SELECT jury_name, team_name, criteria, total
		FROM marks
		WHERE jury_name = ?
		ORDER BY team_name ASC
	`)

	err := s.DB.Select(&marks, query, juryName)
	if err != nil {
		return nil, fmt.Errorf("failed to list jury marks: %w", err)
	}
	return marks, nil
}

// ReplaceJuryMarks swaps out a jury's whole batch in one transaction, so a
// failure partway through leaves the previous batch intact.
func (s *BaseStore) ReplaceJuryMarks(juryName string, marks []models.Mark) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(s.Converter(`DELETE FROM marks WHERE jury_name = ?`), juryName); err != nil {
		return fmt.Errorf("failed to clear previous marks: %w", err)
	}

	for _, mark := range marks {
		_, err := tx.NamedExec(`
			INSERT INTO marks (jury_name, team_name, criteria, total)
			VALUES (:jury_name, :team_name, :criteria, :total)
		`, mark)
		if err != nil {
			return fmt.Errorf("failed to insert mark for team %s: %w", mark.TeamName, err)
		}
	}

	return tx.Commit()
}

func (s *BaseStore) GetSettings() (*models.Settings, error) {
	var settings models.Settings
	err := s.DB.Get(&settings, `
		SELECT criteria, max_marks_per_criterion, competition_name, college_name, club_name
		FROM settings
		WHERE id = 1
	`)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

func (s *BaseStore) SaveSettings(settings *models.Settings) error {
	query := s.Converter(`
		UPDATE settings
		SET criteria = ?,
		    max_marks_per_criterion = ?,
		    competition_name = ?,
		    college_name = ?,
		    club_name = ?
		WHERE id = 1
	`)

	_, err := s.DB.Exec(query,
		settings.Criteria,
		settings.MaxMarksPerCriterion,
		settings.CompetitionName,
		settings.CollegeName,
		settings.ClubName,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// EnsureSettings creates the single settings row if missing. Called once at
// startup so reads never have to materialize it lazily.
func (s *BaseStore) EnsureSettings(defaults models.Settings) error {
	query := s.Converter(`
		INSERT INTO settings (id, criteria, max_marks_per_criterion, competition_name, college_name, club_name)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`)

	_, err := s.DB.Exec(query,
		defaults.Criteria,
		defaults.MaxMarksPerCriterion,
		defaults.CompetitionName,
		defaults.CollegeName,
		defaults.ClubName,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure settings: %w", err)
	}
	return nil
}
