package accounting

import "strings"

// AccountCode pairs a chart-of-accounts code with its canonical display name.
type AccountCode struct {
	Code string
	Name string
}

// Fixed chart of accounts used by the ledger synchronizer.
var (
	AccountsPayable     = AccountCode{Code: "2000", Name: "Accounts Payable"}
	CashGeneralFund     = AccountCode{Code: "1000", Name: "Cash - General Fund"}
	CashRestrictedFund  = AccountCode{Code: "1010", Name: "Cash - Restricted Funds"}
	RevenueUnrestricted = AccountCode{Code: "4000", Name: "Contributions - Unrestricted"}
	RevenueRestricted   = AccountCode{Code: "4100", Name: "Contributions - Restricted"}
)

// categoryRule maps a lower-cased substring of a category name to an expense
// account. Rule order matters: the first match wins.
type categoryRule struct {
	substring string
	account   AccountCode
}

var (
	programExpenses      = AccountCode{Code: "5000", Name: "Program Expenses"}
	personnelExpenses    = AccountCode{Code: "5100", Name: "Personnel Expenses"}
	adminExpenses        = AccountCode{Code: "5200", Name: "Administrative Expenses"}
	fundraisingExpenses  = AccountCode{Code: "5300", Name: "Fundraising Expenses"}
	travelExpenses       = AccountCode{Code: "5400", Name: "Travel Expenses"}
	equipmentSupplies    = AccountCode{Code: "5500", Name: "Equipment & Supplies"}
	professionalServices = AccountCode{Code: "5600", Name: "Professional Services"}
)

var expenseCategoryRules = []categoryRule{
	{"program", programExpenses},
	{"personnel", personnelExpenses},
	{"staff", personnelExpenses},
	{"admin", adminExpenses},
	{"fundraising", fundraisingExpenses},
	{"travel", travelExpenses},
	{"equipment", equipmentSupplies},
	{"supplies", equipmentSupplies},
	{"professional", professionalServices},
	{"services", professionalServices},
}

// ResolveExpenseAccountCode maps a budget category name to its expense
// account. The function is total: unknown or empty category names fall back
// to the program expenses account.
func ResolveExpenseAccountCode(categoryName string) AccountCode {
	name := strings.ToLower(categoryName)
	for _, rule := range expenseCategoryRules {
		if strings.Contains(name, rule.substring) {
			return rule.account
		}
	}
	return programExpenses
}

// ResolveCashAccountCode returns the cash account credited when an expense is
// paid. It currently returns the general fund cash account regardless of the
// fund source's restriction flag; restricted funds are only distinguished on
// the receipt side. Known limitation, kept until the finance team confirms
// the intended treatment.
func ResolveCashAccountCode(fundSourceID *string) AccountCode {
	return CashGeneralFund
}

// ReceiptAccounts returns the cash and revenue accounts for a fund receipt,
// split by the fund's restriction flag.
func ReceiptAccounts(restricted bool) (cash, revenue AccountCode) {
	if restricted {
		return CashRestrictedFund, RevenueRestricted
	}
	return CashGeneralFund, RevenueUnrestricted
}
