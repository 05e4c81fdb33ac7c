package tasks

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Task is a single to-do entry.
type Task struct {
	ID        string
	Name      string
	Completed bool
}

// Store holds tasks in insertion order. The zero value is ready to use.
type Store struct {
	tasks []Task
	newID func() string
}

func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add appends a task named name. Names that are blank after trimming are
// ignored and Add reports false. The stored name keeps its original
// whitespace.
func (s *Store) Add(name string) (Task, bool) {
	if strings.TrimSpace(name) == "" {
		return Task{}, false
	}
	id := s.generateID()
	if s.index(id) >= 0 {
		panic("tasks: duplicate id " + id)
	}
	t := Task{ID: id, Name: name}
	s.tasks = append(s.tasks, t)
	return t, true
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// Toggle flips the completion flag of the task with the given id.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

func (s *Store) Get(id string) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// List returns a copy of the tasks in display order.
func (s *Store) List() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int { return len(s.tasks) }

// Remaining counts tasks that are not completed.
func (s *Store) Remaining() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (s *Store) generateID() string {
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s.newID()
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
