package queries

import (
	"context"
	"fmt"
	"math"
	"testing"

	"studentska/contexts/academics/course-catalog-service/adapters/memory"
	"studentska/contexts/academics/course-catalog-service/domain/entities"
)

func seedCourses(t *testing.T, store *memory.Store, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		err := store.Create(context.Background(), entities.Course{
			ID:      fmt.Sprintf("course-%03d", i),
			Name:    fmt.Sprintf("Predmet %03d", i),
			Code:    fmt.Sprintf("PR%03d", i),
			Credits: 3 + i%6,
		})
		if err != nil {
			t.Fatalf("seed course %d: %v", i, err)
		}
	}
}

func TestSearchDefaultsToFifteenPerPage(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 40)
	uc := SearchCoursesUseCase{Courses: store}

	result, err := uc.Execute(context.Background(), SearchCoursesQuery{})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.PerPage != 15 || len(result.Items) != 15 {
		t.Fatalf("expected default page size 15, got per_page=%d len=%d", result.PerPage, len(result.Items))
	}
	if result.CurrentPage != 1 || result.LastPage != 3 || result.Total != 40 {
		t.Fatalf("unexpected paginator numbers: %+v", result)
	}
	if result.From == nil || *result.From != 1 || result.To == nil || *result.To != 15 {
		t.Fatalf("unexpected from/to: %+v", result)
	}
}

func TestSearchClampsOversizedPage(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 5)
	uc := SearchCoursesUseCase{Courses: store}

	result, err := uc.Execute(context.Background(), SearchCoursesQuery{PerPage: 500})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.PerPage != 100 {
		t.Fatalf("expected per_page clamped to 100, got %d", result.PerPage)
	}
}

func TestSearchLastPartialPage(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 17)
	uc := SearchCoursesUseCase{Courses: store}

	result, err := uc.Execute(context.Background(), SearchCoursesQuery{Page: 2})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(result.Items) != 2 || result.CurrentPage != 2 || result.LastPage != 2 {
		t.Fatalf("unexpected second page: len=%d %+v", len(result.Items), result)
	}
	if result.From == nil || *result.From != 16 || result.To == nil || *result.To != 17 {
		t.Fatalf("unexpected from/to: %+v", result)
	}
}

func TestSearchSurvivesHugePageNumber(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 5)
	uc := SearchCoursesUseCase{Courses: store}

	// An offset computed from math.MaxInt must not wrap negative.
	result, err := uc.Execute(context.Background(), SearchCoursesQuery{Page: math.MaxInt})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(result.Items) != 0 || result.Total != 5 {
		t.Fatalf("expected empty page beyond the data, got len=%d %+v", len(result.Items), result)
	}
	if result.From != nil || result.To != nil {
		t.Fatal("expected nil from/to on an empty page")
	}
}

func TestSearchEmptyResultHasNilBounds(t *testing.T) {
	store := memory.NewStore()
	uc := SearchCoursesUseCase{Courses: store}

	result, err := uc.Execute(context.Background(), SearchCoursesQuery{})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Total != 0 || result.LastPage != 1 {
		t.Fatalf("unexpected paginator numbers: %+v", result)
	}
	if result.From != nil || result.To != nil {
		t.Fatal("expected nil from/to on an empty page")
	}
}

func TestSearchDescendingOnlyOnLiteralDesc(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 3)
	uc := SearchCoursesUseCase{Courses: store}

	result, err := uc.Execute(context.Background(), SearchCoursesQuery{SortBy: "espb", SortOrder: "DESC"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	// Any value other than the exact string "desc" sorts ascending.
	if result.Items[0].Credits > result.Items[len(result.Items)-1].Credits {
		t.Fatalf("expected ascending order for SortOrder=DESC, got %+v", result.Items)
	}

	result, err = uc.Execute(context.Background(), SearchCoursesQuery{SortBy: "espb", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Items[0].Credits < result.Items[len(result.Items)-1].Credits {
		t.Fatalf("expected descending order, got %+v", result.Items)
	}
}
