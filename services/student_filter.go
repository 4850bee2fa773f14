package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condition is a single predicate clause in a storage-neutral form. The
// GORM appliers below translate the clauses; tests assert on them directly.
type Condition struct {
	Query string
	Args  []interface{}
}

// StudentFilter collects the optional student list predicates. A zero filter
// matches every row.
type StudentFilter struct {
	IsDeleted *bool
	GroupID   *uuid.UUID

	From     *time.Time
	To       *time.Time
	Groups   []uuid.UUID
	Managers []uuid.UUID
	Curators []uuid.UUID
	Search   string
}

// BaseConditions covers the fixed isDeleted/groupId predicates plus the date
// range. Cohort totals are computed over this subset only, the narrower
// list filters apply to the page itself.
func (f StudentFilter) BaseConditions() []Condition {
	var conds []Condition
	if f.IsDeleted != nil {
		conds = append(conds, Condition{"is_deleted = ?", []interface{}{*f.IsDeleted}})
	}
	if f.GroupID != nil {
		conds = append(conds, Condition{"group_id = ?", []interface{}{*f.GroupID}})
	}
	if f.From != nil && f.To != nil {
		conds = append(conds, Condition{"added_at >= ? AND added_at <= ?", []interface{}{*f.From, *f.To}})
	}
	return conds
}

func (f StudentFilter) Conditions() []Condition {
	conds := f.BaseConditions()
	if len(f.Groups) > 0 {
		conds = append(conds, Condition{"group_id IN ?", []interface{}{f.Groups}})
	}
	if len(f.Managers) > 0 {
		conds = append(conds, Condition{"manager_id IN ?", []interface{}{f.Managers}})
	}
	if len(f.Curators) > 0 {
		conds = append(conds, Condition{"curator_id IN ?", []interface{}{f.Curators}})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, Condition{
			"(first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?)",
			[]interface{}{pattern, pattern, pattern},
		})
	}
	return conds
}

func (f StudentFilter) Apply(q *gorm.DB) *gorm.DB {
	return applyConditions(q, f.Conditions())
}

func (f StudentFilter) ApplyBase(q *gorm.DB) *gorm.DB {
	return applyConditions(q, f.BaseConditions())
}

// GroupFilter narrows the group list by creation date and name.
type GroupFilter struct {
	From   *time.Time
	To     *time.Time
	Search string
}

func (f GroupFilter) Conditions() []Condition {
	var conds []Condition
	if f.From != nil && f.To != nil {
		conds = append(conds, Condition{"created_at >= ? AND created_at <= ?", []interface{}{*f.From, *f.To}})
	}
	if f.Search != "" {
		conds = append(conds, Condition{"name ILIKE ?", []interface{}{"%" + f.Search + "%"}})
	}
	return conds
}

func (f GroupFilter) Apply(q *gorm.DB) *gorm.DB {
	return applyConditions(q, f.Conditions())
}

func applyConditions(q *gorm.DB, conds []Condition) *gorm.DB {
	for _, cond := range conds {
		q = q.Where(cond.Query, cond.Args...)
	}
	return q
}
