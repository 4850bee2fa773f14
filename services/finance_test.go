package services

import (
	"testing"

	"github.com/meePwn1/maqsad-back/models"
)

func student(price int64, amounts ...int64) models.Student {
	s := models.Student{CoursePrice: price}
	for _, a := range amounts {
		s.Payments = append(s.Payments, models.Payment{Amount: a})
	}
	return s
}

func TestCalculateStudentFinances(t *testing.T) {
	tests := []struct {
		name     string
		student  models.Student
		wantPaid int64
		wantDebt int64
	}{
		{name: "no payments", student: student(1000000), wantPaid: 0, wantDebt: 1000000},
		{name: "partial payments", student: student(1000000, 400000, 300000), wantPaid: 700000, wantDebt: 300000},
		{name: "exact payment", student: student(500000, 500000), wantPaid: 500000, wantDebt: 0},
		{name: "overpayment stays negative", student: student(500000, 600000), wantPaid: 600000, wantDebt: -100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStudentFinances(tt.student)
			if got.TotalPaid != tt.wantPaid || got.Debt != tt.wantDebt {
				t.Errorf("got (paid=%d, debt=%d), want (paid=%d, debt=%d)",
					got.TotalPaid, got.Debt, tt.wantPaid, tt.wantDebt)
			}
		})
	}
}

func TestCalculateTotalPaymentAndDebtMatchesElementwiseSum(t *testing.T) {
	students := []models.Student{
		student(1000000, 400000, 300000),
		student(800000),
		student(500000, 600000),
	}

	totals := CalculateTotalPaymentAndDebt(students)

	var wantPayment, wantDebt int64
	for _, s := range students {
		f := CalculateStudentFinances(s)
		wantPayment += f.TotalPaid
		wantDebt += f.Debt
	}
	if totals.TotalPayment != wantPayment || totals.TotalDebt != wantDebt {
		t.Errorf("totals = %+v, want payment=%d debt=%d", totals, wantPayment, wantDebt)
	}
}

func TestCalculateTotalPaymentAndDebtOrderIndependent(t *testing.T) {
	forward := []models.Student{
		student(1000000, 250000),
		student(300000, 300000),
		student(700000, 900000),
	}
	reversed := []models.Student{forward[2], forward[1], forward[0]}

	if CalculateTotalPaymentAndDebt(forward) != CalculateTotalPaymentAndDebt(reversed) {
		t.Error("totals must not depend on student order")
	}
}

func TestSortStudentsByDebtStable(t *testing.T) {
	build := func() []StudentWithFinance {
		return []StudentWithFinance{
			{Student: models.Student{FirstName: "first"}, Debt: 100},
			{Student: models.Student{FirstName: "second"}, Debt: 100},
			{Student: models.Student{FirstName: "third"}, Debt: 50},
		}
	}

	students := build()
	SortStudentsByDebt(students, SortAsc)
	if students[0].FirstName != "third" || students[1].FirstName != "first" || students[2].FirstName != "second" {
		t.Errorf("asc sort broke tie order: %s, %s, %s",
			students[0].FirstName, students[1].FirstName, students[2].FirstName)
	}

	students = build()
	SortStudentsByDebt(students, SortDesc)
	if students[0].FirstName != "first" || students[1].FirstName != "second" || students[2].FirstName != "third" {
		t.Errorf("desc sort broke tie order: %s, %s, %s",
			students[0].FirstName, students[1].FirstName, students[2].FirstName)
	}

	students = build()
	SortStudentsByDebt(students, "bogus")
	if students[0].FirstName != "first" {
		t.Error("unknown direction must leave order untouched")
	}
}

func TestSortGroupsByStudentsCount(t *testing.T) {
	groups := []GroupWithFinance{
		{Group: models.Group{Name: "alpha"}, StudentsCount: 5},
		{Group: models.Group{Name: "beta"}, StudentsCount: 2},
		{Group: models.Group{Name: "gamma"}, StudentsCount: 9},
	}
	SortGroupsByStudentsCount(groups, SortDesc)
	if groups[0].Name != "gamma" || groups[2].Name != "beta" {
		t.Errorf("unexpected order: %s, %s, %s", groups[0].Name, groups[1].Name, groups[2].Name)
	}
}
