// Package codes translates the bureau's enumeration codes into
// human-readable labels. Every translator is total: an unrecognized code is
// never an error, it either passes through or gets a constructed fallback
// label that embeds the raw code. The maps are fixed at compile time and
// only ever read, so concurrent use is safe.
package codes

import (
	"strings"

	"crednorm/experian-report/internal/normalize"
)

var genderMap = map[string]string{
	"1": "Male",
	"2": "Female",
	"3": "Transgender",
	"M": "Male",
	"F": "Female",
	"T": "Transgender",
}

// Two numbering eras coexist in accountStatusMap (11 and 71 both mean
// Active). Bureau documentation does not say which era wins when a report
// mixes both, so both sets are kept verbatim and never merged.
var accountStatusMap = map[string]string{
	"11": "Active",
	"12": "Active - Delinquent",
	"13": "Closed",
	"14": "Written Off",
	"15": "Settled",
	"16": "Post Write-off Settled",
	"17": "Closed - Transferred",
	"21": "Active - SMA",
	"22": "Active - Sub-Standard",
	"23": "Active - Doubtful",
	"24": "Active - Loss",
	"31": "Closed - Written Off",
	"32": "Closed - Settled",
	"33": "Closed - Post Write-off Settled",
	"41": "Wilful Default",
	"51": "Active - SMA-0",
	"52": "Active - SMA-1",
	"53": "Active - SMA-2",
	"54": "Active - Sub-Standard Asset",
	"55": "Active - Doubtful Asset - 1",
	"56": "Active - Doubtful Asset - 2",
	"57": "Active - Doubtful Asset - 3",
	"58": "Active - Loss Asset",
	"71": "Active",
	"78": "Closed",
	"80": "Active - Written Off",
	"82": "Active - Settled",
	"83": "Active - Post Write-off Settled",
	"84": "Active - Wilful Default",
}

var accountTypeMap = map[string]string{
	"00": "Other",
	"01": "Auto Loan",
	"02": "Housing Loan",
	"03": "Property Loan",
	"04": "Loan Against Shares/Securities",
	"05": "Personal Loan",
	"06": "Consumer Loan",
	"07": "Gold Loan",
	"08": "Educational Loan",
	"09": "Loan to Professional",
	"10": "Credit Card",
	"11": "Leasing",
	"12": "Overdraft",
	"13": "Two-wheeler Loan",
	"14": "Non-Funded Credit Facility",
	"15": "Loan on Bank Deposits",
	"16": "Fleet Card",
	"17": "Commercial Vehicle Loan",
	"18": "Telco - Wireless",
	"19": "Telco - Broadband",
	"20": "Telco - Landline",
	"31": "Secured Credit Card",
	"32": "Used Car Loan",
	"33": "Construction Equipment Loan",
	"34": "Tractor Loan",
	"35": "Corporate Credit Card",
	"36": "Kisan Credit Card",
	"37": "Loan on Credit Card",
	"38": "Prime Minister Jaan Dhan Yojana - Overdraft",
	"39": "Mudra Loans - Shishu / Kishor / Tarun",
	"40": "Microfinance - Business Loan",
	"41": "Microfinance - Personal Loan",
	"42": "Microfinance - Housing Loan",
	"43": "Microfinance - Others",
	"44": "Pradhan Mantri Awas Yojana - MAY",
	"45": "P2P Personal Loan",
	"46": "P2P Auto Loan",
	"47": "P2P Education Loan",
	"51": "Business Loan - General",
	"52": "Business Loan - Priority Sector - Small Business",
	"53": "Business Loan - Priority Sector - Agriculture",
	"54": "Business Loan - Priority Sector - Others",
	"55": "Business Non-Funded Credit Facility - General",
	"56": "Business Non-Funded Credit Facility - Priority Sector - Small Business",
	"57": "Business Non-Funded Credit Facility - Priority Sector - Agriculture",
	"58": "Business Non-Funded Credit Facility - Priority Sector - Others",
	"59": "Business Loan Against Bank Deposits",
	"61": "Business Loan - Unsecured",
}

var portfolioTypeMap = map[string]string{
	"C": "Cash",
	"R": "Revolving",
	"I": "Installment",
	"M": "Mortgage",
	"O": "Open",
	"U": "Unsecured",
	"S": "Secured",
	"X": "Not Categorized",
}

var holderTypeMap = map[string]string{
	"1": "Individual",
	"2": "Authorized User",
	"3": "Guarantor",
	"4": "Joint",
	"5": "Deceased",
}

var paymentRatingMap = map[string]string{
	"0": "Standard/Current",
	"1": "1-30 days overdue",
	"2": "31-60 days overdue",
	"3": "61-90 days overdue",
	"4": "91-120 days overdue",
	"5": "121-150 days overdue",
	"6": "151-180 days overdue",
	"7": "180+ days overdue",
	"8": "Written off",
	"9": "Settled",
}

var enquiryPurposeMap = map[string]string{
	"1":  "Personal Loan",
	"2":  "Auto Loan",
	"3":  "Housing Loan",
	"4":  "Credit Card",
	"5":  "Business Loan",
	"6":  "Consumer Loan",
	"7":  "Gold Loan",
	"8":  "Educational Loan",
	"9":  "Commercial Vehicle Loan",
	"10": "Microfinance",
	"00": "Other",
	"XX": "Not Categorized",
}

// Two-digit administrative region codes as used in the address block.
var stateMap = map[string]string{
	"01": "Jammu & Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman & Diu",
	"26": "Dadra & Nagar Haveli",
	"27": "Maharashtra",
	"28": "Andhra Pradesh",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman & Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh (New)",
}

// Gender maps a bureau gender code (1/2/3 or M/F/T, case-insensitive) to a
// label. Unknown codes pass through trimmed.
func Gender(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := genderMap[strings.ToUpper(code)]; ok {
		return label
	}
	return code
}

// AccountStatus maps an account status code to a label. Unknown codes get a
// "Status Code <code>" fallback so a new bureau code never rejects a report.
func AccountStatus(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := accountStatusMap[code]; ok {
		return label
	}
	return "Status Code " + code
}

// AccountType maps an account type code to a product label, with an
// "Account Type <code>" fallback.
func AccountType(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := accountTypeMap[code]; ok {
		return label
	}
	return "Account Type " + code
}

// PortfolioType maps a single-letter portfolio code (case-insensitive) to a
// label. Unknown codes pass through trimmed.
func PortfolioType(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := portfolioTypeMap[strings.ToUpper(code)]; ok {
		return label
	}
	return code
}

// HolderType maps an account holder/ownership code to a label, with a
// "Holder Type <code>" fallback.
func HolderType(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := holderTypeMap[code]; ok {
		return label
	}
	return "Holder Type " + code
}

// PaymentRating maps the 0-9 delinquency-bucket scale to a description.
// Unknown ratings pass through trimmed.
func PaymentRating(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := paymentRatingMap[code]; ok {
		return label
	}
	return code
}

// EnquiryPurpose maps an enquiry reason code to a loan-product label, with a
// "Purpose <code>" fallback. An absent reason yields "" rather than a
// dangling fallback label.
func EnquiryPurpose(v interface{}) string {
	code := normalize.CoerceString(v)
	if code == "" {
		return ""
	}
	if label, ok := enquiryPurposeMap[code]; ok {
		return label
	}
	return "Purpose " + code
}

// State maps a two-digit region code to the region name. Unknown codes pass
// through trimmed.
func State(v interface{}) string {
	code := normalize.CoerceString(v)
	if label, ok := stateMap[code]; ok {
		return label
	}
	return code
}

// SuitFiled derives the tri-state suit-filed flag from the bureau's
// two-valued code: 01 means a suit was filed, 02 means none, anything else
// is Unknown.
func SuitFiled(v interface{}) string {
	switch normalize.CoerceString(v) {
	case "01":
		return "Yes"
	case "02":
		return "No"
	default:
		return "Unknown"
	}
}
