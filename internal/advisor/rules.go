package advisor

import (
	"fmt"
	"strings"
)

// rule pairs a keyword set with the advisory line it produces. Rules are
// evaluated top to bottom and the first matching rule wins per change.
type rule struct {
	keywords []string
	advice   string
}

var rules = []rule{
	{[]string{"income", "salary", "revenue"}, "Increase verifiable income sources."},
	{[]string{"debt", "loan", "liability"}, "Reduce your debt-to-income ratio."},
	{[]string{"credit", "score", "history"}, "Improve credit history with on-time payments."},
	{[]string{"collateral", "asset", "property"}, "Strengthen collateral documentation."},
	{[]string{"guarantor", "co-signer"}, "Add a creditworthy guarantor."},
}

// RuleBasedAdvice maps each requested change to a canned recommendation by
// keyword matching. It is pure: no I/O, no state, identical inputs yield
// identical output. A change that matches no rule contributes no line; if
// nothing matches at all the result is a single generic recommendation
// naming the category.
func RuleBasedAdvice(changes []string, category Category) string {
	var lines []string
	for _, change := range changes {
		lowered := strings.ToLower(change)
		for _, r := range rules {
			if containsAny(lowered, r.keywords) {
				lines = append(lines, "- "+r.advice)
				break
			}
		}
	}

	if len(lines) == 0 {
		return fmt.Sprintf("For a %s application, focus on improving your income, credit history, and collateral to raise your approval chances.", category)
	}
	return strings.Join(lines, "\n")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
