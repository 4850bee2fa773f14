package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStudentFilterEmptyYieldsNoConditions(t *testing.T) {
	var f StudentFilter
	if conds := f.Conditions(); len(conds) != 0 {
		t.Errorf("empty filter produced %d conditions: %+v", len(conds), conds)
	}
}

func TestStudentFilterBaseConditions(t *testing.T) {
	isDeleted := false
	groupID := uuid.New()
	f := StudentFilter{IsDeleted: &isDeleted, GroupID: &groupID}

	conds := f.BaseConditions()
	if len(conds) != 2 {
		t.Fatalf("expected 2 base conditions, got %d", len(conds))
	}
	if conds[0].Query != "is_deleted = ?" || conds[0].Args[0] != false {
		t.Errorf("unexpected isDeleted clause: %+v", conds[0])
	}
	if conds[1].Query != "group_id = ?" || conds[1].Args[0] != groupID {
		t.Errorf("unexpected groupId clause: %+v", conds[1])
	}
}

func TestStudentFilterDateRangeNeedsBothBounds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	onlyFrom := StudentFilter{From: &from}
	if len(onlyFrom.Conditions()) != 0 {
		t.Error("a single bound must not constrain the result")
	}

	to := from.AddDate(0, 1, 0)
	both := StudentFilter{From: &from, To: &to}
	conds := both.Conditions()
	if len(conds) != 1 || !strings.Contains(conds[0].Query, "added_at") {
		t.Errorf("expected one added_at range clause, got %+v", conds)
	}
	if conds[0].Args[0] != from || conds[0].Args[1] != to {
		t.Errorf("range bounds not carried through: %+v", conds[0].Args)
	}
}

func TestStudentFilterIDSets(t *testing.T) {
	groups := []uuid.UUID{uuid.New(), uuid.New()}
	managers := []uuid.UUID{uuid.New()}
	f := StudentFilter{Groups: groups, Managers: managers}

	conds := f.Conditions()
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Query != "group_id IN ?" {
		t.Errorf("unexpected groups clause: %q", conds[0].Query)
	}
	if conds[1].Query != "manager_id IN ?" {
		t.Errorf("unexpected managers clause: %q", conds[1].Query)
	}
}

func TestStudentFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := StudentFilter{Search: "an"}

	conds := f.Conditions()
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(conds))
	}
	cond := conds[0]
	if !strings.Contains(cond.Query, "ILIKE") {
		t.Errorf("search must be case-insensitive, got %q", cond.Query)
	}
	for _, field := range []string{"first_name", "last_name", "phone"} {
		if !strings.Contains(cond.Query, field) {
			t.Errorf("search clause missing %s: %q", field, cond.Query)
		}
	}
	if len(cond.Args) != 3 || cond.Args[0] != "%an%" {
		t.Errorf("expected three %%an%% patterns, got %+v", cond.Args)
	}

	// ILIKE '%an%' matches both of these regardless of case.
	for _, name := range []string{"Anna", "Ivan"} {
		if !strings.Contains(strings.ToLower(name), "an") {
			t.Errorf("pattern should match %q", name)
		}
	}
}

func TestGroupFilterConditions(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 2, 0)
	f := GroupFilter{From: &from, To: &to, Search: "Beginner"}

	conds := f.Conditions()
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if !strings.Contains(conds[0].Query, "created_at") {
		t.Errorf("unexpected range clause: %q", conds[0].Query)
	}
	if conds[1].Query != "name ILIKE ?" || conds[1].Args[0] != "%Beginner%" {
		t.Errorf("unexpected search clause: %+v", conds[1])
	}
}
