package sport

import (
	"fmt"
	"time"

	"sportui/internal/sport/store"
)

var demoExercises = []store.Exercise{
	{Name: "Squat", Description: "Barbell back squat"},
	{Name: "Bench press", Description: "Flat bench, barbell"},
	{Name: "Deadlift", Description: "Conventional stance"},
	{Name: "Pull-up", Description: "Bodyweight, full range"},
}

// SeedDemo fills an empty db with sample exercises and an account under
// accountID.
func SeedDemo(db *store.DB, accountID store.ID) error {
	for _, e := range demoExercises {
		if _, err := db.Exercises.Insert(e); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
	}
	_, err := db.Persons.Insert(store.Person{
		ID:        accountID,
		FirstName: "Demo",
		LastName:  "Athlete",
		BirthDate: time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
		Gender:    "n/a",
		Height:    178,
	})
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	return nil
}
