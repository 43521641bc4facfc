package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"studentska/contexts/academics/course-catalog-service/domain/entities"
	domainerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	"studentska/contexts/academics/course-catalog-service/ports"
)

// Store is an in-memory adapter implementing the catalog ports for local
// runtime and tests. It enforces the same code-uniqueness constraint the
// postgres unique index provides.
type Store struct {
	mu       sync.RWMutex
	courses  map[string]entities.Course
	order    []string
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		courses: make(map[string]entities.Course),
		order:   make([]string, 0),
	}
}

func (s *Store) Create(_ context.Context, course entities.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.courses {
		if existing.Code == course.Code {
			return domainerrors.ErrCodeTaken
		}
	}
	s.courses[course.ID] = course
	s.order = append(s.order, course.ID)
	return nil
}

func (s *Store) Update(_ context.Context, course entities.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.ID]; !ok {
		return domainerrors.ErrCourseNotFound
	}
	for id, existing := range s.courses {
		if id != course.ID && existing.Code == course.Code {
			return domainerrors.ErrCodeTaken
		}
	}
	s.courses[course.ID] = course
	return nil
}

func (s *Store) Delete(_ context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[courseID]; !ok {
		return domainerrors.ErrCourseNotFound
	}
	delete(s.courses, courseID)
	for i, id := range s.order {
		if id == courseID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Get(_ context.Context, courseID string) (entities.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[courseID]
	if !ok {
		return entities.Course{}, domainerrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *Store) List(_ context.Context) ([]entities.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Course, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.courses[id])
	}
	return items, nil
}

func (s *Store) Search(_ context.Context, filter ports.SearchFilter) ([]entities.Course, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []entities.Course
	for _, id := range s.order {
		course := s.courses[id]
		if !matches(course, filter) {
			continue
		}
		matched = append(matched, course)
	}

	sortCourses(matched, filter.SortBy, filter.SortDesc)

	total := len(matched)
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > total || end < start {
		end = total
	}
	page := make([]entities.Course, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

func (s *Store) CodeExists(_ context.Context, code string, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, course := range s.courses {
		if id != excludeID && course.Code == code {
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
	return fmt.Sprintf("course-%d", value), nil
}

func matches(course entities.Course, filter ports.SearchFilter) bool {
	if filter.NameContains != "" &&
		!strings.Contains(strings.ToLower(course.Name), strings.ToLower(filter.NameContains)) {
		return false
	}
	if filter.CodeContains != "" && !strings.Contains(course.Code, filter.CodeContains) {
		return false
	}
	if filter.Credits != nil && course.Credits != *filter.Credits {
		return false
	}
	if filter.Semester != nil && (course.Semester == nil || *course.Semester != *filter.Semester) {
		return false
	}
	if filter.Year != nil && (course.Year == nil || *course.Year != *filter.Year) {
		return false
	}
	if filter.CreditsMin != nil && course.Credits < *filter.CreditsMin {
		return false
	}
	if filter.CreditsMax != nil && course.Credits > *filter.CreditsMax {
		return false
	}
	return true
}

func sortCourses(items []entities.Course, sortBy string, desc bool) {
	less := func(a, b entities.Course) bool {
		switch sortBy {
		case ports.SortByCode:
			if a.Code != b.Code {
				return a.Code < b.Code
			}
		case ports.SortByCredits:
			if a.Credits != b.Credits {
				return a.Credits < b.Credits
			}
		case ports.SortBySemester:
			av, bv := intOrZero(a.Semester), intOrZero(b.Semester)
			if av != bv {
				return av < bv
			}
		case ports.SortByYear:
			av, bv := intOrZero(a.Year), intOrZero(b.Year)
			if av != bv {
				return av < bv
			}
		case ports.SortByCreatedAt:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
