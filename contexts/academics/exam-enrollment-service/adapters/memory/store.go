package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
	domainerrors "studentska/contexts/academics/exam-enrollment-service/domain/errors"
)

// Store is an in-memory adapter implementing the ledger ports for local
// runtime and tests. The (student, course) pair is kept unique under the
// same conditions as the postgres composite index.
type Store struct {
	mu          sync.RWMutex
	enrollments map[string]entities.Enrollment
	order       []string
	sequence    uint64
}

func NewStore() *Store {
	return &Store{
		enrollments: make(map[string]entities.Enrollment),
		order:       make([]string, 0),
	}
}

func (s *Store) Create(_ context.Context, enrollment entities.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return domainerrors.ErrAlreadyEnrolled
		}
	}
	s.enrollments[enrollment.ID] = enrollment
	s.order = append(s.order, enrollment.ID)
	return nil
}

func (s *Store) DeleteOwned(_ context.Context, enrollmentID string, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.enrollments[enrollmentID]
	if !ok || enrollment.StudentID != studentID {
		return domainerrors.ErrEnrollmentNotFound
	}
	s.remove(enrollmentID)
	return nil
}

func (s *Store) DeleteByStudent(_ context.Context, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, enrollment := range s.enrollments {
		if enrollment.StudentID == studentID {
			s.remove(id)
		}
	}
	return nil
}

func (s *Store) DeleteByCourse(_ context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, enrollment := range s.enrollments {
		if enrollment.CourseID == courseID {
			s.remove(id)
		}
	}
	return nil
}

func (s *Store) ListByStudent(_ context.Context, studentID string) ([]entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Enrollment
	for _, id := range s.order {
		enrollment := s.enrollments[id]
		if enrollment.StudentID == studentID {
			items = append(items, enrollment)
		}
	}
	return items, nil
}

func (s *Store) ExistsPair(_ context.Context, studentID string, courseID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, enrollment := range s.enrollments {
		if enrollment.StudentID == studentID && enrollment.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("enrollment-%d", value), nil
}

// remove assumes the write lock is held.
func (s *Store) remove(enrollmentID string) {
	delete(s.enrollments, enrollmentID)
	for i, id := range s.order {
		if id == enrollmentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
