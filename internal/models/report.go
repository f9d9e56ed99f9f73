// Package models provides the data structures used throughout the application.
package models

// CreditReport is the canonical document produced from one bureau XML report.
// Every numeric field is a defined number (missing input coerces to 0) and
// every string field is a defined string (missing input coerces to ""), so
// the whole document serializes without nulls.
type CreditReport struct {
	BasicDetails              BasicDetails              `json:"basicDetails" yaml:"basicDetails"`
	CreditScore               CreditScore               `json:"creditScore" yaml:"creditScore"`
	ReportSummary             ReportSummary             `json:"reportSummary" yaml:"reportSummary"`
	CreditAccountsInformation CreditAccountsInformation `json:"creditAccountsInformation" yaml:"creditAccountsInformation"`
	CreditEnquiries           []EnquiryRecord           `json:"creditEnquiries" yaml:"creditEnquiries"`
	Metadata                  ReportMetadata            `json:"metadata" yaml:"metadata"`
}

// BasicDetails holds the subject's identity as reported by the bureau.
type BasicDetails struct {
	Name           string `json:"name" yaml:"name"`
	DateOfBirth    string `json:"dateOfBirth" yaml:"dateOfBirth"`
	Gender         string `json:"gender" yaml:"gender"`
	Mobile         string `json:"mobile" yaml:"mobile"`
	Email          string `json:"email" yaml:"email"`
	PAN            string `json:"pan" yaml:"pan"`
	PassportNumber string `json:"passportNumber" yaml:"passportNumber"`
	VoterID        string `json:"voterID" yaml:"voterID"`
	DrivingLicense string `json:"drivingLicense" yaml:"drivingLicense"`
	RationCard     string `json:"rationCard" yaml:"rationCard"`
	UIDNumber      string `json:"uidNumber" yaml:"uidNumber"`
}

// CreditScore carries the bureau's own score value through unchanged.
type CreditScore struct {
	BureauScore      float64  `json:"bureauScore" yaml:"bureauScore"`
	ScoreName        string   `json:"scoreName" yaml:"scoreName"`
	ScoreDate        string   `json:"scoreDate" yaml:"scoreDate"`
	ScoreCardName    string   `json:"scoreCardName" yaml:"scoreCardName"`
	ScoreCardVersion string   `json:"scoreCardVersion" yaml:"scoreCardVersion"`
	ConfidenceLevel  string   `json:"confidenceLevel" yaml:"confidenceLevel"`
	ReasonCodes      []string `json:"reasonCodes" yaml:"reasonCodes"`
}

// ReportSummary aggregates account counts, outstanding balances and the
// enquiry counts bucketed by trailing window.
type ReportSummary struct {
	TotalAccounts       float64 `json:"totalAccounts" yaml:"totalAccounts"`
	ActiveAccounts      float64 `json:"activeAccounts" yaml:"activeAccounts"`
	ClosedAccounts      float64 `json:"closedAccounts" yaml:"closedAccounts"`
	DefaultAccounts     float64 `json:"defaultAccounts" yaml:"defaultAccounts"`
	OverdueAccounts     float64 `json:"overdueAccounts" yaml:"overdueAccounts"`
	CurrentBalance      float64 `json:"currentBalance" yaml:"currentBalance"`
	SecuredAmount       float64 `json:"securedAmount" yaml:"securedAmount"`
	UnsecuredAmount     float64 `json:"unsecuredAmount" yaml:"unsecuredAmount"`
	SecuredPercentage   float64 `json:"securedPercentage" yaml:"securedPercentage"`
	UnsecuredPercentage float64 `json:"unsecuredPercentage" yaml:"unsecuredPercentage"`
	ZeroBalanceAccounts  float64 `json:"zeroBalanceAccounts" yaml:"zeroBalanceAccounts"`
	Last7DaysEnquiries   float64 `json:"last7DaysEnquiries" yaml:"last7DaysEnquiries"`
	Last30DaysEnquiries  float64 `json:"last30DaysEnquiries" yaml:"last30DaysEnquiries"`
	Last90DaysEnquiries  float64 `json:"last90DaysEnquiries" yaml:"last90DaysEnquiries"`
	Last180DaysEnquiries float64 `json:"last180DaysEnquiries" yaml:"last180DaysEnquiries"`
	Last365DaysEnquiries float64 `json:"last365DaysEnquiries" yaml:"last365DaysEnquiries"`
}

// CreditAccountsInformation groups the per-account records with the
// cross-cutting fields derived from them.
type CreditAccountsInformation struct {
	TotalCreditCards   int             `json:"totalCreditCards" yaml:"totalCreditCards"`
	BanksOfCreditCards []string        `json:"banksOfCreditCards" yaml:"banksOfCreditCards"`
	Addresses          []string        `json:"addresses" yaml:"addresses"`
	Accounts           []AccountRecord `json:"accounts" yaml:"accounts"`
}

// AccountRecord is one CAIS account line. Code-translated fields always
// carry both the raw code and its label.
type AccountRecord struct {
	SubscriberName     string `json:"subscriberName" yaml:"subscriberName"`
	AccountNumber      string `json:"accountNumber" yaml:"accountNumber"`
	AccountType        string `json:"accountType" yaml:"accountType"`
	AccountTypeCode    string `json:"accountTypeCode" yaml:"accountTypeCode"`
	PortfolioType      string `json:"portfolioType" yaml:"portfolioType"`
	PortfolioTypeCode  string `json:"portfolioTypeCode" yaml:"portfolioTypeCode"`
	OwnershipIndicator string `json:"ownershipIndicator" yaml:"ownershipIndicator"`
	OwnershipCode      string `json:"ownershipCode" yaml:"ownershipCode"`

	OpenDate               string `json:"openDate" yaml:"openDate"`
	DateReported           string `json:"dateReported" yaml:"dateReported"`
	DateClosed             string `json:"dateClosed" yaml:"dateClosed"`
	DateOfLastPayment      string `json:"dateOfLastPayment" yaml:"dateOfLastPayment"`
	DateOfFirstDelinquency string `json:"dateOfFirstDelinquency" yaml:"dateOfFirstDelinquency"`
	DateOfAddition         string `json:"dateOfAddition" yaml:"dateOfAddition"`

	CurrentBalance   float64 `json:"currentBalance" yaml:"currentBalance"`
	AmountOverdue    float64 `json:"amountOverdue" yaml:"amountOverdue"`
	CreditLimit      float64 `json:"creditLimit" yaml:"creditLimit"`
	HighestCredit    float64 `json:"highestCredit" yaml:"highestCredit"`
	SanctionedAmount float64 `json:"sanctionedAmount" yaml:"sanctionedAmount"`
	DrawingPower     float64 `json:"drawingPower" yaml:"drawingPower"`
	EMI              float64 `json:"emi" yaml:"emi"`

	AccountStatus            string `json:"accountStatus" yaml:"accountStatus"`
	AccountStatusCode        string `json:"accountStatusCode" yaml:"accountStatusCode"`
	PaymentRating            string `json:"paymentRating" yaml:"paymentRating"`
	PaymentRatingDescription string `json:"paymentRatingDescription" yaml:"paymentRatingDescription"`
	PaymentHistory           string `json:"paymentHistory" yaml:"paymentHistory"`
	PaymentHistoryStartDate  string `json:"paymentHistoryStartDate" yaml:"paymentHistoryStartDate"`
	PaymentHistoryEndDate    string `json:"paymentHistoryEndDate" yaml:"paymentHistoryEndDate"`

	SuitFiled           string  `json:"suitFiled" yaml:"suitFiled"`
	SuitFiledAmount     float64 `json:"suitFiledAmount" yaml:"suitFiledAmount"`
	WilfulDefault       string  `json:"wilfulDefault" yaml:"wilfulDefault"`
	WrittenOffStatus    string  `json:"writtenOffStatus" yaml:"writtenOffStatus"`
	WrittenOffAmount    float64 `json:"writtenOffAmount" yaml:"writtenOffAmount"`
	WrittenOffPrincipal float64 `json:"writtenOffPrincipal" yaml:"writtenOffPrincipal"`
	SettlementAmount    float64 `json:"settlementAmount" yaml:"settlementAmount"`

	InterestRate     float64 `json:"interestRate" yaml:"interestRate"`
	RepaymentTenure  float64 `json:"repaymentTenure" yaml:"repaymentTenure"`
	TermsDuration    float64 `json:"termsDuration" yaml:"termsDuration"`
	PaymentFrequency string  `json:"paymentFrequency" yaml:"paymentFrequency"`

	CollateralType  string  `json:"collateralType" yaml:"collateralType"`
	CollateralValue float64 `json:"collateralValue" yaml:"collateralValue"`

	SpecialComment     string `json:"specialComment" yaml:"specialComment"`
	SubscriberComments string `json:"subscriberComments" yaml:"subscriberComments"`
	ConsumerComments   string `json:"consumerComments" yaml:"consumerComments"`
	CurrencyCode       string `json:"currencyCode" yaml:"currencyCode"`

	AccountHistory []AccountHistoryEntry `json:"accountHistory" yaml:"accountHistory"`
	HolderDetails  HolderDetails         `json:"holderDetails" yaml:"holderDetails"`
	AddressDetails AddressDetails        `json:"addressDetails" yaml:"addressDetails"`
	PhoneDetails   PhoneDetails          `json:"phoneDetails" yaml:"phoneDetails"`
}

// AccountHistoryEntry is one historical reporting period of an account,
// kept in the order it was encountered.
type AccountHistoryEntry struct {
	Year                string  `json:"year" yaml:"year"`
	Month               string  `json:"month" yaml:"month"`
	DaysPastDue         float64 `json:"daysPastDue" yaml:"daysPastDue"`
	AssetClassification string  `json:"assetClassification" yaml:"assetClassification"`
	Balance             float64 `json:"balance" yaml:"balance"`
	PaymentStatus       string  `json:"paymentStatus" yaml:"paymentStatus"`
}

// HolderDetails describes the holder attached to one account.
type HolderDetails struct {
	FirstName   string `json:"firstName" yaml:"firstName"`
	MiddleName  string `json:"middleName" yaml:"middleName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	FullName    string `json:"fullName" yaml:"fullName"`
	PAN         string `json:"pan" yaml:"pan"`
	DateOfBirth string `json:"dateOfBirth" yaml:"dateOfBirth"`
	Gender      string `json:"gender" yaml:"gender"`
	Alias       string `json:"alias" yaml:"alias"`
}

// AddressDetails describes the holder address attached to one account.
// FullAddress is pre-joined from the non-empty parts with ", ".
type AddressDetails struct {
	FullAddress   string `json:"fullAddress" yaml:"fullAddress"`
	AddressLine1  string `json:"addressLine1" yaml:"addressLine1"`
	AddressLine2  string `json:"addressLine2" yaml:"addressLine2"`
	AddressLine3  string `json:"addressLine3" yaml:"addressLine3"`
	City          string `json:"city" yaml:"city"`
	State         string `json:"state" yaml:"state"`
	StateCode     string `json:"stateCode" yaml:"stateCode"`
	PINCode       string `json:"pinCode" yaml:"pinCode"`
	Country       string `json:"country" yaml:"country"`
	Category      string `json:"category" yaml:"category"`
	ResidenceCode string `json:"residenceCode" yaml:"residenceCode"`
}

// PhoneDetails describes the holder contact numbers attached to one account.
type PhoneDetails struct {
	Telephone string `json:"telephone" yaml:"telephone"`
	Mobile    string `json:"mobile" yaml:"mobile"`
	Fax       string `json:"fax" yaml:"fax"`
	Email     string `json:"email" yaml:"email"`
}

// EnquiryRecord is one CAPS application/enquiry line.
type EnquiryRecord struct {
	EnquiryDate        string  `json:"enquiryDate" yaml:"enquiryDate"`
	EnquiryPurpose     string  `json:"enquiryPurpose" yaml:"enquiryPurpose"`
	EnquiryPurposeCode string  `json:"enquiryPurposeCode" yaml:"enquiryPurposeCode"`
	EnquiryAmount      float64 `json:"enquiryAmount" yaml:"enquiryAmount"`
	Subscriber         string  `json:"subscriber" yaml:"subscriber"`
	SubscriberCode     string  `json:"subscriberCode" yaml:"subscriberCode"`
	EnquiryStage       string  `json:"enquiryStage" yaml:"enquiryStage"`
	CreditType         string  `json:"creditType" yaml:"creditType"`
}

// ReportMetadata carries the report header fields.
type ReportMetadata struct {
	ReportDate    string `json:"reportDate" yaml:"reportDate"`
	ReportTime    string `json:"reportTime" yaml:"reportTime"`
	ReportNumber  string `json:"reportNumber" yaml:"reportNumber"`
	Version       string `json:"version" yaml:"version"`
	EnquiryReason string `json:"enquiryReason" yaml:"enquiryReason"`
}
