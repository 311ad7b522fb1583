package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/juryboard/juryboard/internal/models"
	"github.com/juryboard/juryboard/internal/scoring"
	"github.com/juryboard/juryboard/internal/store"
)

// ErrCriterionIndex is returned when a positional criteria delete points
// past the end of the current list.
var ErrCriterionIndex = errors.New("criterion index out of range")

type Service struct {
	Config *Config
	Store  store.MarkingStore
	Auth   *Auth
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN, config.Database.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	auth, err := NewAuth(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init auth: %w", err)
	}

	service := &Service{
		Config: config,
		Store:  store,
		Auth:   auth,
	}

	if err := service.Store.EnsureSettings(service.defaultSettings()); err != nil {
		service.Close()
		return nil, fmt.Errorf("failed to init settings: %w", err)
	}

	return service, nil
}

func (s *Service) defaultSettings() models.Settings {
	criteria := make(models.CriteriaList, 0, len(s.Config.Competition.Criteria))
	for _, name := range s.Config.Competition.Criteria {
		criteria = append(criteria, scoring.Normalize(name))
	}
	return models.Settings{
		Criteria:             criteria,
		MaxMarksPerCriterion: s.Config.Competition.MaxMarksPerCriterion,
		CompetitionName:      s.Config.Competition.CompetitionName,
		CollegeName:          s.Config.Competition.CollegeName,
		ClubName:             s.Config.Competition.ClubName,
	}
}

// RequireAdmin gates mutating admin endpoints when auth is enabled.
func (s *Service) RequireAdmin(r *http.Request) error {
	if !s.Config.Server.EnableAuth {
		return nil
	}
	token := r.Header.Get(s.Auth.tokenHeader)
	if token == "" {
		return fmt.Errorf("missing admin token")
	}
	return s.Auth.ValidateToken(r.Context(), token)
}

// Settings reads the singleton settings row. The row is created at startup,
// so a missing row is a hard error rather than a cue to create one lazily.
func (s *Service) Settings() (*models.Settings, error) {
	settings, err := s.Store.GetSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("settings row is missing")
	}
	return settings, nil
}

// SettingsPatch carries the partial update body for the settings endpoint.
// Empty display names are ignored, matching the save behavior the admin
// panel expects.
type SettingsPatch struct {
	CompetitionName      *string  `json:"competitionName"`
	CollegeName          *string  `json:"collegeName"`
	ClubName             *string  `json:"clubName"`
	MaxMarksPerCriterion *int     `json:"maxMarksPerCriterion"`
	CriteriaList         []string `json:"criteriaList"`
}

func (s *Service) UpdateSettings(patch SettingsPatch) (*models.Settings, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	if patch.CriteriaList != nil {
		criteria := make(models.CriteriaList, 0, len(patch.CriteriaList))
		for _, name := range patch.CriteriaList {
			criteria = append(criteria, scoring.Normalize(name))
		}
		settings.Criteria = criteria
	}
	if patch.MaxMarksPerCriterion != nil {
		settings.MaxMarksPerCriterion = *patch.MaxMarksPerCriterion
	}
	if patch.CompetitionName != nil && *patch.CompetitionName != "" {
		settings.CompetitionName = *patch.CompetitionName
	}
	if patch.CollegeName != nil && *patch.CollegeName != "" {
		settings.CollegeName = *patch.CollegeName
	}
	if patch.ClubName != nil && *patch.ClubName != "" {
		settings.ClubName = *patch.ClubName
	}

	if err := s.Store.SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Service) ResetSettings() (*models.Settings, error) {
	defaults := s.defaultSettings()
	if err := s.Store.SaveSettings(&defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func (s *Service) ListCriteria() ([]string, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	return settings.Criteria, nil
}

// AddCriterion appends a normalized criterion name. Adding a name that is
// already registered is a no-op, not an error.
func (s *Service) AddCriterion(name string) ([]string, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	criterion := scoring.Normalize(name)
	for _, existing := range settings.Criteria {
		if existing == criterion {
			return settings.Criteria, nil
		}
	}

	settings.Criteria = append(settings.Criteria, criterion)
	if err := s.Store.SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings.Criteria, nil
}

// RemoveCriterionAt deletes by positional index, keeping the relative order
// of the remainder. A stale index past the end is rejected instead of being
// applied blindly.
func (s *Service) RemoveCriterionAt(index int) ([]string, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(settings.Criteria) {
		return nil, ErrCriterionIndex
	}

	settings.Criteria = append(settings.Criteria[:index], settings.Criteria[index+1:]...)
	if err := s.Store.SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings.Criteria, nil
}

// SubmitMarks replaces a jury's whole batch. Incoming criterion keys are
// normalized and filtered against the live registry, totals are recomputed
// server-side, and the jury flips to submitted with a fresh timestamp.
func (s *Service) SubmitMarks(juryName string, batch []models.MarkSubmission) ([]models.Mark, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	marks := make([]models.Mark, 0, len(batch))
	for _, submission := range batch {
		if submission.TeamName == "" {
			return nil, fmt.Errorf("mark submission is missing a team name")
		}
		criteria := scoring.Conform(submission.Criteria, settings.Criteria)
		marks = append(marks, models.Mark{
			JuryName: juryName,
			TeamName: submission.TeamName,
			Criteria: criteria,
			Total:    scoring.Total(criteria),
		})
	}

	if err := s.Store.ReplaceJuryMarks(juryName, marks); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	if _, err := s.Store.UpsertJuryStatus(juryName, true, false, &now); err != nil {
		return nil, err
	}

	return marks, nil
}

// JuryMarks returns one jury's marks conformed to the live registry.
func (s *Service) JuryMarks(juryName string) ([]models.Mark, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	marks, err := s.Store.ListJuryMarks(juryName)
	if err != nil {
		return nil, err
	}
	return scoring.Rescore(marks, settings.Criteria), nil
}

func (s *Service) AllMarks() ([]models.Mark, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	marks, err := s.Store.ListMarks()
	if err != nil {
		return nil, err
	}
	return scoring.Rescore(marks, settings.Criteria), nil
}

func (s *Service) Leaderboard() (scoring.Leaderboard, error) {
	teams, err := s.Store.ListTeams()
	if err != nil {
		return scoring.Leaderboard{}, err
	}
	juries, err := s.Store.ListJuries()
	if err != nil {
		return scoring.Leaderboard{}, err
	}
	marks, err := s.AllMarks()
	if err != nil {
		return scoring.Leaderboard{}, err
	}
	return scoring.ComputeLeaderboard(teams, juries, marks), nil
}

func (s *Service) SubmissionStatus() ([]scoring.JuryStatus, error) {
	juries, err := s.Store.ListJuries()
	if err != nil {
		return nil, err
	}
	return scoring.SubmissionStatus(juries), nil
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Auth.Close(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
