package database

import "time"

// LoanApplication represents one loan application row. The advice path never
// reads or writes these; they back the tabular display only.
type LoanApplication struct {
	ID        uint      `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	ApplicantName string  `db:"applicant_name" json:"applicant_name"`
	Category      string  `db:"category" json:"category"`
	Amount        float64 `db:"amount" json:"amount"`
	AnnualIncome  float64 `db:"annual_income" json:"annual_income"`
	CreditScore   int     `db:"credit_score" json:"credit_score"`
	Status        string  `db:"status" json:"status"`
}
