package services

import (
	"sort"

	"github.com/meePwn1/maqsad-back/models"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type StudentFinances struct {
	TotalPaid int64 `json:"total_paid"`
	Debt      int64 `json:"debt"`
}

type FinanceTotals struct {
	TotalPayment int64 `json:"totalPayment"`
	TotalDebt    int64 `json:"totalDebt"`
}

// CalculateStudentFinances sums the student's payments. Debt is the course
// price minus the total paid and may be negative on overpayment.
func CalculateStudentFinances(student models.Student) StudentFinances {
	var totalPaid int64
	for _, payment := range student.Payments {
		totalPaid += payment.Amount
	}
	return StudentFinances{
		TotalPaid: totalPaid,
		Debt:      student.CoursePrice - totalPaid,
	}
}

func CalculateTotalPaymentAndDebt(students []models.Student) FinanceTotals {
	var totals FinanceTotals
	for _, student := range students {
		finances := CalculateStudentFinances(student)
		totals.TotalPayment += finances.TotalPaid
		totals.TotalDebt += finances.Debt
	}
	return totals
}

type StudentWithFinance struct {
	models.Student
	TotalPaid int64 `json:"total_paid"`
	Debt      int64 `json:"debt"`
}

type GroupWithFinance struct {
	models.Group
	TotalPayment  int64 `json:"total_payment"`
	TotalDebt     int64 `json:"total_debt"`
	StudentsCount int   `json:"students_count"`
}

// SortStudentsByDebt sorts in place. The sort is stable so repeated calls
// with the same fetch order paginate deterministically.
func SortStudentsByDebt(students []StudentWithFinance, direction string) {
	switch direction {
	case SortAsc:
		sort.SliceStable(students, func(i, j int) bool { return students[i].Debt < students[j].Debt })
	case SortDesc:
		sort.SliceStable(students, func(i, j int) bool { return students[i].Debt > students[j].Debt })
	}
}

func SortGroupsByDebt(groups []GroupWithFinance, direction string) {
	switch direction {
	case SortAsc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalDebt < groups[j].TotalDebt })
	case SortDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalDebt > groups[j].TotalDebt })
	}
}

func SortGroupsByStudentsCount(groups []GroupWithFinance, direction string) {
	switch direction {
	case SortAsc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].StudentsCount < groups[j].StudentsCount })
	case SortDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].StudentsCount > groups[j].StudentsCount })
	}
}
