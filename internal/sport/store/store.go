// Package store is the in-memory cache of exercise tracker records.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned for records that cannot be stored.
	ErrInvalid = errors.New("invalid record")
)

// ID identifies a record. Zero means "not stored yet".
type ID = uint64

// Exercise is a named exercise with a free-form description.
type Exercise struct {
	ID          ID
	Name        string
	Description string
}

func (e Exercise) key() ID { return e.ID }

func (e Exercise) withKey(id ID) Exercise {
	e.ID = id
	return e
}

func (e Exercise) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: exercise name is empty", ErrInvalid)
	}
	return nil
}

// Person is the account holder.
type Person struct {
	ID        ID
	FirstName string
	LastName  string
	BirthDate time.Time
	Gender    string
	Height    int // cm
}

// FullName joins the first and last names.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Person) key() ID { return p.ID }

func (p Person) withKey(id ID) Person {
	p.ID = id
	return p
}

func (p Person) validate() error {
	if p.FullName() == "" {
		return fmt.Errorf("%w: person has no name", ErrInvalid)
	}
	if p.Height < 0 {
		return fmt.Errorf("%w: negative height %d", ErrInvalid, p.Height)
	}
	return nil
}

// record is what a Table can hold.
type record[T any] interface {
	key() ID
	withKey(ID) T
	validate() error
}

// Table holds records of one kind keyed by ID. Listing is ordered by ID.
type Table[T record[T]] struct {
	rows   map[ID]T
	nextID ID
}

func newTable[T record[T]]() *Table[T] {
	return &Table[T]{rows: make(map[ID]T), nextID: 1}
}

// Len returns the number of records.
func (t *Table[T]) Len() int { return len(t.rows) }

// Contains reports whether id is stored.
func (t *Table[T]) Contains(id ID) bool {
	_, ok := t.rows[id]
	return ok
}

// Get returns the record with id.
func (t *Table[T]) Get(id ID) (T, error) {
	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return r, nil
}

// List returns all records ordered by ID.
func (t *Table[T]) List() []T {
	ids := make([]ID, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = t.rows[id]
	}
	return out
}

// Insert stores r. A zero ID is replaced with the next free one; a
// non-zero ID overwrites any record stored under it.
func (t *Table[T]) Insert(r T) (T, error) {
	if err := r.validate(); err != nil {
		var zero T
		return zero, err
	}
	id := r.key()
	if id == 0 {
		id = t.nextID
		r = r.withKey(id)
	}
	if id >= t.nextID {
		t.nextID = id + 1
	}
	t.rows[id] = r
	return r, nil
}

// Update replaces the stored record with the same ID.
func (t *Table[T]) Update(r T) error {
	if err := r.validate(); err != nil {
		return err
	}
	if !t.Contains(r.key()) {
		return fmt.Errorf("update %d: %w", r.key(), ErrNotFound)
	}
	t.rows[r.key()] = r
	return nil
}

// Remove deletes the record with id.
func (t *Table[T]) Remove(id ID) error {
	if !t.Contains(id) {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	delete(t.rows, id)
	return nil
}

// Clear drops every record.
func (t *Table[T]) Clear() {
	clear(t.rows)
}

// DB groups the tables of a session.
type DB struct {
	Exercises *Table[Exercise]
	Persons   *Table[Person]
}

// New creates an empty database.
func New() *DB {
	return &DB{
		Exercises: newTable[Exercise](),
		Persons:   newTable[Person](),
	}
}
