package models

import (
	"fmt"

	dErrors "folio/pkg/domain-errors"
)

// SkillLevel grades proficiency on a skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Validate() error {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid skill level %q", string(l)))
}

// CredentialType distinguishes a finished course from an earned
// certification.
type CredentialType string

const (
	TypeCourse        CredentialType = "Course"
	TypeCertification CredentialType = "Certification"
)

func (t CredentialType) Validate() error {
	switch t {
	case TypeCourse, TypeCertification:
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid type %q", string(t)))
}

// Difficulty is the problem difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid difficulty %q", string(d)))
}

// ProgressStatus tracks how far a problem has come.
type ProgressStatus string

const (
	StatusSolved     ProgressStatus = "Solved"
	StatusInProgress ProgressStatus = "In Progress"
	StatusAttempted  ProgressStatus = "Attempted"
)

func (s ProgressStatus) Validate() error {
	switch s {
	case StatusSolved, StatusInProgress, StatusAttempted:
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid status %q", string(s)))
}
