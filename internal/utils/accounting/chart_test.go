package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExpenseAccountCode(t *testing.T) {
	testCases := []struct {
		category     string
		expectedCode string
	}{
		{"Program Supplies", "5000"},
		{"Community Programs", "5000"},
		{"Personnel", "5100"},
		{"Staff Salaries", "5100"},
		{"Administration", "5200"},
		{"Fundraising Events", "5300"},
		{"Travel & Lodging", "5400"},
		{"Office Equipment", "5500"},
		{"Medical Supplies", "5500"},
		{"Professional Fees", "5600"},
		{"Legal Services", "5600"},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, ResolveExpenseAccountCode(tc.category).Code)
		})
	}
}

func TestResolveExpenseAccountCode_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "5400", ResolveExpenseAccountCode("TRAVEL").Code)
	assert.Equal(t, "5100", ResolveExpenseAccountCode("pErSoNnEl").Code)
}

func TestResolveExpenseAccountCode_RuleOrder(t *testing.T) {
	// "Program Supplies" matches both "program" and "supplies"; the earlier
	// rule must win.
	assert.Equal(t, "5000", ResolveExpenseAccountCode("Program Supplies").Code)
}

func TestResolveExpenseAccountCode_Fallback(t *testing.T) {
	assert.Equal(t, "5000", ResolveExpenseAccountCode("").Code)
	assert.Equal(t, "5000", ResolveExpenseAccountCode("Miscellaneous").Code)
}

func TestResolveCashAccountCode_IgnoresFundSource(t *testing.T) {
	fundID := "F1"
	assert.Equal(t, CashGeneralFund, ResolveCashAccountCode(nil))
	assert.Equal(t, CashGeneralFund, ResolveCashAccountCode(&fundID))
}

func TestReceiptAccounts(t *testing.T) {
	cash, revenue := ReceiptAccounts(true)
	assert.Equal(t, "1010", cash.Code)
	assert.Equal(t, "4100", revenue.Code)

	cash, revenue = ReceiptAccounts(false)
	assert.Equal(t, "1000", cash.Code)
	assert.Equal(t, "4000", revenue.Code)
}
