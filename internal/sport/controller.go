// Package sport is the exercise tracker built on the ui core: a menu layer
// with an exercises page and an account page, plus the editor and
// confirmation popups they open.
package sport

import (
	"fmt"
	"io"
	"log"

	"sportui/internal/config"
	"sportui/internal/sport/store"
)

// Controller owns the record store for a session. Screens get the
// controller handed to them and go through it for every read and write.
type Controller struct {
	db       *store.DB
	keys     config.KeyMap
	account  store.ID
	logger   *log.Logger
	onChange []func()
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger (default discards).
func WithControllerLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// WithKeyMap overrides the default key map.
func WithKeyMap(k config.KeyMap) ControllerOption {
	return func(c *Controller) { c.keys = k }
}

// WithAccount selects the account shown on the account page.
func WithAccount(id store.ID) ControllerOption {
	return func(c *Controller) { c.account = id }
}

// NewController creates a controller owning db.
func NewController(db *store.DB, opts ...ControllerOption) *Controller {
	d := config.Default()
	c := &Controller{
		db:      db,
		keys:    d.KeyMap,
		account: d.Account.ID,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// KeyMap returns the configured global keys.
func (c *Controller) KeyMap() config.KeyMap { return c.keys }

// OnChange registers fn to run after every successful write.
func (c *Controller) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

func (c *Controller) changed() {
	for _, fn := range c.onChange {
		fn()
	}
}

// Exercises returns all exercises ordered by ID.
func (c *Controller) Exercises() []store.Exercise {
	return c.db.Exercises.List()
}

// Exercise returns one exercise.
func (c *Controller) Exercise(id store.ID) (store.Exercise, error) {
	return c.db.Exercises.Get(id)
}

// InsertExercise stores a new exercise and returns it with its ID.
func (c *Controller) InsertExercise(e store.Exercise) (store.Exercise, error) {
	inserted, err := c.db.Exercises.Insert(e)
	if err != nil {
		c.logger.Printf("sport: insert exercise %q: %v", e.Name, err)
		return store.Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}
	c.logger.Printf("sport: inserted exercise %d", inserted.ID)
	c.changed()
	return inserted, nil
}

// UpdateExercise replaces a stored exercise.
func (c *Controller) UpdateExercise(e store.Exercise) error {
	if err := c.db.Exercises.Update(e); err != nil {
		c.logger.Printf("sport: update exercise %d: %v", e.ID, err)
		return fmt.Errorf("update exercise: %w", err)
	}
	c.logger.Printf("sport: updated exercise %d", e.ID)
	c.changed()
	return nil
}

// RemoveExercise deletes an exercise.
func (c *Controller) RemoveExercise(id store.ID) error {
	if err := c.db.Exercises.Remove(id); err != nil {
		c.logger.Printf("sport: remove exercise %d: %v", id, err)
		return fmt.Errorf("remove exercise: %w", err)
	}
	c.logger.Printf("sport: removed exercise %d", id)
	c.changed()
	return nil
}

// Account returns the configured account holder.
func (c *Controller) Account() (store.Person, error) {
	p, err := c.db.Persons.Get(c.account)
	if err != nil {
		return store.Person{}, fmt.Errorf("account: %w", err)
	}
	return p, nil
}

// AccountID returns the configured account ID.
func (c *Controller) AccountID() store.ID { return c.account }
