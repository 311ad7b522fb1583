package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ScoreMap holds one jury's per-criterion scores for a team, keyed by
// criterion name. Persisted as a JSON object in a text column, the key set
// is open-ended so admins can change the criteria list without migrations.
type ScoreMap map[string]int

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = ScoreMap{}
		return nil
	default:
		return fmt.Errorf("unsupported criteria column type %T", src)
	}
}

// Mark is one jury's scores for one team. Total is computed on write from
// the criteria registered at that moment; readers must not trust it after
// the registry changes.
type Mark struct {
	JuryName string   `db:"jury_name" json:"juryName" validate:"required"`
	TeamName string   `db:"team_name" json:"teamName" validate:"required"`
	Criteria ScoreMap `db:"criteria" json:"criteria"`
	Total    int      `db:"total" json:"total"`
}

func (m *Mark) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// MarkSubmission is one team's entry inside a jury's submit batch.
type MarkSubmission struct {
	TeamName string   `json:"teamName" validate:"required"`
	Criteria ScoreMap `json:"criteria"`
}
