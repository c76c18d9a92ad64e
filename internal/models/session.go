package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DomainAssessments groups the up-to-eight optional domain observations of a
// therapy session. Absent domains were not assessed that session.
type DomainAssessments struct {
	CommunicationSkills  *CommunicationSkills  `json:"communication_skills,omitempty"`
	EmotionalDevelopment *EmotionalDevelopment `json:"emotional_development,omitempty"`
	SocialSkills         *SocialSkills         `json:"social_skills,omitempty"`
	Behavior             *Behavior             `json:"behavior,omitempty"`
	CognitiveSkills      *CognitiveSkills      `json:"cognitive_skills,omitempty"`
	SensoryProcessing    *SensoryProcessing    `json:"sensory_processing,omitempty"`
	DailyLivingSkills    *DailyLivingSkills    `json:"daily_living_skills,omitempty"`
	TherapyParticipation *TherapyParticipation `json:"therapy_participation,omitempty"`
}

// Get returns the assessment for the given domain, or nil when the domain
// was not assessed. The nil checks keep typed nils out of the interface.
func (d *DomainAssessments) Get(key DomainKey) Assessment {
	if d == nil {
		return nil
	}
	switch key {
	case DomainCommunicationSkills:
		if d.CommunicationSkills != nil {
			return d.CommunicationSkills
		}
	case DomainEmotionalDevelopment:
		if d.EmotionalDevelopment != nil {
			return d.EmotionalDevelopment
		}
	case DomainSocialSkills:
		if d.SocialSkills != nil {
			return d.SocialSkills
		}
	case DomainBehavior:
		if d.Behavior != nil {
			return d.Behavior
		}
	case DomainCognitiveSkills:
		if d.CognitiveSkills != nil {
			return d.CognitiveSkills
		}
	case DomainSensoryProcessing:
		if d.SensoryProcessing != nil {
			return d.SensoryProcessing
		}
	case DomainDailyLivingSkills:
		if d.DailyLivingSkills != nil {
			return d.DailyLivingSkills
		}
	case DomainTherapyParticipation:
		if d.TherapyParticipation != nil {
			return d.TherapyParticipation
		}
	}
	return nil
}

// Value serialises the assessments into a JSONB column.
func (d DomainAssessments) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan reads the assessments back from a JSONB column.
func (d *DomainAssessments) Scan(src interface{}) error {
	if src == nil {
		*d = DomainAssessments{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported domain assessments source %T", src)
	}
}

// SessionActivity is a session row joined with the child's name, used for
// dashboard recent-activity feeds.
type SessionActivity struct {
	ChildName           string    `db:"child_name"`
	SessionDate         time.Time `db:"session_date"`
	DurationMinutes     int       `db:"duration_minutes"`
	ActivitiesPerformed string    `db:"activities_performed"`
}

// TherapySession is one logged therapy session. Sessions are append-only
// history; there is no update or delete path.
type TherapySession struct {
	ID                  string            `db:"id" json:"id"`
	ChildID             string            `db:"child_id" json:"child_id"`
	DoctorID            string            `db:"doctor_id" json:"doctor_id"`
	SessionDate         time.Time         `db:"session_date" json:"session_date"`
	DurationMinutes     int               `db:"duration_minutes" json:"duration_minutes"`
	ActivitiesPerformed string            `db:"activities_performed" json:"activities_performed"`
	Notes               string            `db:"notes" json:"notes"`
	Domains             DomainAssessments `db:"domains" json:"domains"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at"`
}
