package domain

import "time"

type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseBalance     ExerciseType = "balance"
)

// ExerciseTypes lists every known exercise type in declaration order.
func ExerciseTypes() []ExerciseType {
	return []ExerciseType{ExerciseStrength, ExerciseCardio, ExerciseFlexibility, ExerciseBalance}
}

func (t ExerciseType) Valid() bool {
	switch t {
	case ExerciseStrength, ExerciseCardio, ExerciseFlexibility, ExerciseBalance:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every known difficulty in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Exercise is a catalog entry shared by all users. Names are unique.
type Exercise struct {
	ID          string
	Name        string
	Type        ExerciseType
	Difficulty  Difficulty
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
