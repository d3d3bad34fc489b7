package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Reflection represents one completed reflection form for a user
type Reflection struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user_id" bson:"user_id"`
	CoreValues       []string  `json:"core_values" bson:"core_values"`
	LifeGoals        []string  `json:"life_goals" bson:"life_goals"`
	CurrentStruggles []string  `json:"current_struggles" bson:"current_struggles"`
	IdealSelf        string    `json:"ideal_self,omitempty" bson:"ideal_self,omitempty"`
	DecisionFocus    string    `json:"decision_focus,omitempty" bson:"decision_focus,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// ErrInvalidReflection tags validation failures on reflection records.
var ErrInvalidReflection = errors.New("invalid reflection")

func (r *Reflection) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidReflection)
	}
	if len(r.CoreValues) == 0 && len(r.LifeGoals) == 0 && len(r.CurrentStruggles) == 0 {
		return fmt.Errorf("%w: at least one value, goal, or struggle is required", ErrInvalidReflection)
	}
	return nil
}

// Summary reduces a stored reflection to the fields the prompt builder consumes.
func (r *Reflection) Summary() ReflectionSummary {
	return ReflectionSummary{
		CoreValues:       r.CoreValues,
		LifeGoals:        r.LifeGoals,
		CurrentStruggles: r.CurrentStruggles,
	}
}

// ReflectionSummary is the request-scoped view of a prior reflection used to
// personalize prompts. Read-only within the chat and voice flows.
type ReflectionSummary struct {
	CoreValues       []string
	LifeGoals        []string
	CurrentStruggles []string
}

// reflectionSummaryWire mirrors the two shapes clients send: the storage shape
// (snake_case arrays at the top level) and the widget shape (camelCase arrays
// nested under userData).
type reflectionSummaryWire struct {
	CoreValues       []string `json:"core_values"`
	LifeGoals        []string `json:"life_goals"`
	CurrentStruggles []string `json:"current_struggles"`
	UserData         *struct {
		CoreValues       []string `json:"coreValues"`
		LifeGoals        []string `json:"lifeGoals"`
		CurrentStruggles []string `json:"currentStruggles"`
	} `json:"userData"`
}

// UnmarshalJSON accepts both wire shapes, preferring the top-level fields.
func (s *ReflectionSummary) UnmarshalJSON(data []byte) error {
	var wire reflectionSummaryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.CoreValues = wire.CoreValues
	s.LifeGoals = wire.LifeGoals
	s.CurrentStruggles = wire.CurrentStruggles

	if wire.UserData != nil {
		if len(s.CoreValues) == 0 {
			s.CoreValues = wire.UserData.CoreValues
		}
		if len(s.LifeGoals) == 0 {
			s.LifeGoals = wire.UserData.LifeGoals
		}
		if len(s.CurrentStruggles) == 0 {
			s.CurrentStruggles = wire.UserData.CurrentStruggles
		}
	}

	return nil
}
