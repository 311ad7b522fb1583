package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CriteriaList is the ordered criteria registry, stored as a JSON array.
// Order is insertion order; removal by index keeps the rest in place.
type CriteriaList []string

func (c CriteriaList) Value() (driver.Value, error) {
	if c == nil {
		c = CriteriaList{}
	}
	return json.Marshal(c)
}

func (c *CriteriaList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = CriteriaList{}
		return nil
	default:
		return fmt.Errorf("unsupported criteria column type %T", src)
	}
}

// Settings is the single competition configuration record. Exactly one row
// exists, created explicitly at startup from the configured defaults.
// MaxMarksPerCriterion is one shared ceiling for every criterion.
type Settings struct {
	Criteria             CriteriaList `db:"criteria" json:"criteria"`
	MaxMarksPerCriterion int          `db:"max_marks_per_criterion" json:"maxMarksPerCriterion"`
	CompetitionName      string       `db:"competition_name" json:"competitionName"`
	CollegeName          string       `db:"college_name" json:"collegeName"`
	ClubName             string       `db:"club_name" json:"clubName"`
}
