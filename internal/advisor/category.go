package advisor

import "fmt"

// Category is the loan product type an application belongs to. It is used
// only to frame generated text; it never changes which advice rules apply.
type Category string

const (
	CategoryPersonal  Category = "Personal Loan"
	CategoryHome      Category = "Home Loan"
	CategorySME       Category = "SME Loan"
	CategoryAuto      Category = "Auto Loan"
	CategoryEducation Category = "Education Loan"
)

// Categories returns all loan categories in display order.
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryHome,
		CategorySME,
		CategoryAuto,
		CategoryEducation,
	}
}

// ParseCategory maps a raw string to a known Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown loan category: %q", s)
}
