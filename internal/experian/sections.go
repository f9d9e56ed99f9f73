package experian

import (
	"strings"

	"crednorm/experian-report/internal/codes"
	"crednorm/experian-report/internal/models"
	"crednorm/experian-report/internal/normalize"
	"crednorm/experian-report/internal/xmltree"
)

// Account-type codes that count as credit cards: credit card, secured credit
// card and corporate credit card. Policy constant, not configurable.
var creditCardTypeCodes = map[string]bool{
	"10": true,
	"31": true,
	"35": true,
}

// firstValue returns the first candidate that carries a non-empty value.
func firstValue(candidates ...interface{}) interface{} {
	for _, v := range candidates {
		if normalize.CoerceString(v) != "" {
			return v
		}
	}
	return nil
}

// assembleName joins name parts with single spaces, dropping empty parts.
func assembleName(parts ...interface{}) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := normalize.CoerceString(part); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}

// accountNodes resolves the CAIS account container, normalizing the
// array-or-single shape into a sequence.
func accountNodes(root xmltree.Node) []xmltree.Node {
	cais := root.Section("CAIS_Account")
	return xmltree.AsSlice(cais.First("CAIS_Account_DETAILS", "CAIS_Account_Details"))
}

// firstAccountHolder returns the holder block of the first account, used as
// the fallback source for the subject's identity when the applicant block
// is sparse.
func firstAccountHolder(root xmltree.Node) xmltree.Node {
	accounts := accountNodes(root)
	if len(accounts) == 0 {
		return xmltree.Node{}
	}
	return accounts[0].Section("CAIS_Holder_Details")
}

func buildBasicDetails(root xmltree.Node) models.BasicDetails {
	applicant := root.Section("Current_Application.Current_Application_Details.Current_Applicant_Details")
	holder := firstAccountHolder(root)

	name := assembleName(
		firstValue(applicant.First("First_Name"), holder.First("First_Name_Non_Normalized")),
		firstValue(applicant.First("Middle_Name1", "Middle_Name_1"), holder.First("Middle_Name_1_Non_Normalized")),
		applicant.First("Middle_Name2", "Middle_Name_2"),
		applicant.First("Middle_Name3", "Middle_Name_3"),
		firstValue(applicant.First("Last_Name"), holder.First("Surname_Non_Normalized")),
	)
	if name == "" {
		name = "Name Not Available"
	}

	return models.BasicDetails{
		Name:           name,
		DateOfBirth:    normalize.FormatReportDate(firstValue(applicant.First("Date_Of_Birth_Applicant"), holder.First("Date_of_birth"))),
		Gender:         codes.Gender(firstValue(applicant.First("Gender_Code", "Gender"), holder.First("Gender_Code"))),
		Mobile:         normalize.CoerceString(applicant.First("MobilePhoneNumber", "Mobile_Phone_Number")),
		Email:          normalize.CoerceString(applicant.First("EMailId", "Email_Id")),
		PAN:            normalize.CoerceString(firstValue(applicant.First("IncomeTaxPan", "Income_TAX_PAN"), holder.First("Income_TAX_PAN"))),
		PassportNumber: normalize.CoerceString(applicant.First("Passport_number", "Passport_Number")),
		VoterID:        normalize.CoerceString(applicant.First("Voter_s_Identity_Card", "Voter_ID_Number")),
		DrivingLicense: normalize.CoerceString(applicant.First("Driver_License_Number")),
		RationCard:     normalize.CoerceString(applicant.First("Ration_Card_Number")),
		UIDNumber:      normalize.CoerceString(applicant.First("Universal_ID_Number")),
	}
}

func buildCreditScore(root xmltree.Node) models.CreditScore {
	score := root.Section("SCORE", "Score")

	reasonCodes := make([]string, 0)
	for _, raw := range xmltree.AsScalars(score.First("ReasonCode", "Reason_Code")) {
		reasonCodes = append(reasonCodes, normalize.CoerceString(raw))
	}

	return models.CreditScore{
		BureauScore:      normalize.CoerceNumber(score.First("BureauScore", "Bureau_Score")),
		ScoreName:        normalize.CoerceString(score.First("ScoreName", "Score_Name")),
		ScoreDate:        normalize.FormatReportDate(score.First("ScoreDate", "Score_Date")),
		ScoreCardName:    normalize.CoerceString(score.First("ScoreCardName", "Score_Card_Name")),
		ScoreCardVersion: normalize.CoerceString(score.First("ScoreCardVersion")),
		ConfidenceLevel:  normalize.CoerceString(score.First("BureauScoreConfidLevel", "Score_Confid_Level")),
		ReasonCodes:      reasonCodes,
	}
}

func buildReportSummary(root xmltree.Node) models.ReportSummary {
	summary := root.Section("CAIS_Account.CAIS_Summary.Credit_Account")
	balance := root.Section("CAIS_Account.CAIS_Summary.Total_Outstanding_Balance")
	caps := root.Section("TotalCAPS_Summary", "Total_CAPS_Summary")

	return models.ReportSummary{
		TotalAccounts:        normalize.CoerceNumber(summary.First("CreditAccountTotal", "Credit_Account_Total")),
		ActiveAccounts:       normalize.CoerceNumber(summary.First("CreditAccountActive", "Credit_Account_Active")),
		ClosedAccounts:       normalize.CoerceNumber(summary.First("CreditAccountClosed", "Credit_Account_Closed")),
		DefaultAccounts:      normalize.CoerceNumber(summary.First("CreditAccountDefault", "Credit_Account_Default")),
		OverdueAccounts:      normalize.CoerceNumber(summary.First("CreditAccountOverdue")),
		CurrentBalance:       normalize.CoerceNumber(balance.First("Outstanding_Balance_All", "Total_Outstanding_Balance")),
		SecuredAmount:        normalize.CoerceNumber(balance.First("Outstanding_Balance_Secured")),
		UnsecuredAmount:      normalize.CoerceNumber(balance.First("Outstanding_Balance_UnSecured")),
		SecuredPercentage:    normalize.CoerceNumber(balance.First("Outstanding_Balance_Secured_Percentage")),
		UnsecuredPercentage:  normalize.CoerceNumber(balance.First("Outstanding_Balance_UnSecured_Percentage")),
		ZeroBalanceAccounts:  normalize.CoerceNumber(summary.First("CreditAccountZeroBalance")),
		Last7DaysEnquiries:   normalize.CoerceNumber(caps.First("TotalCAPSLast7Days", "Total_CAPS_Last_7_Days")),
		Last30DaysEnquiries:  normalize.CoerceNumber(caps.First("TotalCAPSLast30Days", "Total_CAPS_Last_30_Days")),
		Last90DaysEnquiries:  normalize.CoerceNumber(caps.First("TotalCAPSLast90Days", "Total_CAPS_Last_90_Days")),
		Last180DaysEnquiries: normalize.CoerceNumber(caps.First("TotalCAPSLast180Days", "Total_CAPS_Last_180_Days")),
		Last365DaysEnquiries: normalize.CoerceNumber(caps.First("TotalCAPSLast365Days", "Total_CAPS_Last_365_Days")),
	}
}

func buildAccounts(root xmltree.Node) []models.AccountRecord {
	nodes := accountNodes(root)
	accounts := make([]models.AccountRecord, 0, len(nodes))
	for _, node := range nodes {
		accounts = append(accounts, buildAccount(node))
	}
	return accounts
}

func buildAccount(a xmltree.Node) models.AccountRecord {
	holder := a.Section("CAIS_Holder_Details", "CAIS_Holder_Id_Details")
	address := a.Section("CAIS_Holder_Address_Details")
	phone := a.Section("CAIS_Holder_Phone_Details")

	historyNodes := xmltree.AsSlice(a.First("CAIS_Account_History"))
	history := make([]models.AccountHistoryEntry, 0, len(historyNodes))
	for _, h := range historyNodes {
		history = append(history, models.AccountHistoryEntry{
			Year:                normalize.CoerceString(h.First("Year")),
			Month:               normalize.CoerceString(h.First("Month")),
			DaysPastDue:         normalize.CoerceNumber(h.First("Days_Past_Due")),
			AssetClassification: normalize.CoerceString(h.First("Asset_Classification")),
			Balance:             normalize.CoerceNumber(h.First("Balance")),
			PaymentStatus:       normalize.CoerceString(h.First("Payment_Status")),
		})
	}

	accountTypeCode := normalize.CoerceString(a.First("Account_Type"))
	portfolioTypeCode := normalize.CoerceString(a.First("Portfolio_Type"))
	statusCode := normalize.CoerceString(a.First("Account_Status"))
	paymentRating := a.First("Payment_Rating")

	return models.AccountRecord{
		SubscriberName:     normalize.CoerceString(a.First("Subscriber_Name")),
		AccountNumber:      normalize.CoerceString(a.First("Account_Number")),
		AccountType:        codes.AccountType(accountTypeCode),
		AccountTypeCode:    accountTypeCode,
		PortfolioType:      codes.PortfolioType(portfolioTypeCode),
		PortfolioTypeCode:  portfolioTypeCode,
		OwnershipIndicator: codes.HolderType(a.First("AccountHoldertypeCode", "Account_Holder_type_Code")),
		OwnershipCode:      normalize.CoerceString(a.First("AccountHoldertypeCode", "Account_Holder_type_Code")),

		OpenDate:               normalize.FormatReportDate(a.First("Open_Date")),
		DateReported:           normalize.FormatReportDate(a.First("Date_Reported")),
		DateClosed:             normalize.FormatReportDate(a.First("Date_Closed")),
		DateOfLastPayment:      normalize.FormatReportDate(a.First("Date_of_Last_Payment")),
		DateOfFirstDelinquency: normalize.FormatReportDate(a.First("Date_of_First_Delinquency")),
		DateOfAddition:         normalize.FormatReportDate(a.First("DateOfAddition", "Date_Of_Addition")),

		CurrentBalance:   normalize.CoerceNumber(a.First("Current_Balance")),
		AmountOverdue:    normalize.CoerceNumber(a.First("Amount_Past_Due", "Amount_Overdue")),
		CreditLimit:      normalize.CoerceNumber(a.First("Credit_Limit_Amount", "Highest_Credit_or_Original_Loan_Amount")),
		HighestCredit:    normalize.CoerceNumber(a.First("Highest_Credit_or_Original_Loan_Amount")),
		SanctionedAmount: normalize.CoerceNumber(a.First("Sanctioned_Amount")),
		DrawingPower:     normalize.CoerceNumber(a.First("Drawing_Power")),
		EMI:              normalize.CoerceNumber(a.First("Scheduled_Monthly_Payment_Amount", "EMI_Amount")),

		AccountStatus:            codes.AccountStatus(statusCode),
		AccountStatusCode:        statusCode,
		PaymentRating:            normalize.CoerceString(paymentRating),
		PaymentRatingDescription: codes.PaymentRating(paymentRating),
		PaymentHistory:           normalize.CoerceString(a.First("Payment_History_Profile")),
		PaymentHistoryStartDate:  normalize.FormatReportDate(a.First("Payment_History_Start_Date")),
		PaymentHistoryEndDate:    normalize.FormatReportDate(a.First("Payment_History_End_Date")),

		SuitFiled:           codes.SuitFiled(a.First("SuitFiled_WilfulDefault", "Suit_Filed_Wilful_Default")),
		SuitFiledAmount:     normalize.CoerceNumber(a.First("Suit_Filed_Amount")),
		WilfulDefault:       normalize.CoerceString(a.First("Wilful_Default")),
		WrittenOffStatus:    normalize.CoerceString(a.First("Written_off_Settled_Status")),
		WrittenOffAmount:    normalize.CoerceNumber(a.First("Written_Off_Amt_Total")),
		WrittenOffPrincipal: normalize.CoerceNumber(a.First("Written_Off_Amt_Principal")),
		SettlementAmount:    normalize.CoerceNumber(a.First("Settlement_Amount")),

		InterestRate:     normalize.CoerceNumber(a.First("Rate_of_Interest", "Interest_Rate")),
		RepaymentTenure:  normalize.CoerceNumber(a.First("Repayment_Tenure")),
		TermsDuration:    normalize.CoerceNumber(a.First("Terms_Duration")),
		PaymentFrequency: normalize.CoerceString(a.First("Terms_Frequency", "Payment_Frequency")),

		CollateralType:  normalize.CoerceString(a.First("Type_of_Collateral", "Collateral_Type")),
		CollateralValue: normalize.CoerceNumber(a.First("Value_of_Collateral")),

		SpecialComment:     normalize.CoerceString(a.First("Special_Comment")),
		SubscriberComments: normalize.CoerceString(a.First("Subscriber_comments")),
		ConsumerComments:   normalize.CoerceString(a.First("Consumer_comments")),
		CurrencyCode:       normalize.CoerceString(a.First("CurrencyCode", "Currency_Code")),

		AccountHistory: history,
		HolderDetails:  buildHolderDetails(holder),
		AddressDetails: buildAddressDetails(address),
		PhoneDetails: models.PhoneDetails{
			Telephone: normalize.CoerceString(phone.First("Telephone_Number")),
			Mobile:    normalize.CoerceString(phone.First("Mobile_Telephone_Number", "Mobile_Number")),
			Fax:       normalize.CoerceString(phone.First("FaxNumber", "Fax_Number")),
			Email:     normalize.CoerceString(phone.First("EMailId", "Email_Id")),
		},
	}
}

func buildHolderDetails(holder xmltree.Node) models.HolderDetails {
	return models.HolderDetails{
		FirstName:  normalize.CoerceString(holder.First("First_Name_Non_Normalized", "First_Name")),
		MiddleName: normalize.CoerceString(holder.First("Middle_Name_1_Non_Normalized", "Middle_Name_1")),
		LastName:   normalize.CoerceString(holder.First("Surname_Non_Normalized", "Surname")),
		FullName: assembleName(
			holder.First("First_Name_Non_Normalized", "First_Name"),
			holder.First("Middle_Name_1_Non_Normalized", "Middle_Name_1"),
			holder.First("Middle_Name_2_Non_Normalized", "Middle_Name_2"),
			holder.First("Middle_Name_3_Non_Normalized", "Middle_Name_3"),
			holder.First("Surname_Non_Normalized", "Surname"),
		),
		PAN:         normalize.CoerceString(holder.First("Income_TAX_PAN", "Income_Tax_PAN")),
		DateOfBirth: normalize.FormatReportDate(holder.First("Date_of_birth", "Date_Of_Birth")),
		Gender:      codes.Gender(holder.First("Gender_Code", "Gender")),
		Alias:       normalize.CoerceString(holder.First("Alias")),
	}
}

func buildAddressDetails(address xmltree.Node) models.AddressDetails {
	stateRaw := address.First("State_non_normalized", "State")
	fullAddress := joinAddressParts(
		normalize.CoerceString(address.First("First_Line_Of_Address_non_normalized", "Address_Line_1")),
		normalize.CoerceString(address.First("Second_Line_Of_Address_non_normalized", "Address_Line_2")),
		normalize.CoerceString(address.First("Third_Line_Of_Address_non_normalized", "Address_Line_3")),
		normalize.CoerceString(address.First("Fourth_Line_Of_Address_non_normalized", "Address_Line_4")),
		normalize.CoerceString(address.First("Fifth_Line_Of_Address_non_normalized", "Address_Line_5")),
		normalize.CoerceString(address.First("City_non_normalized", "City")),
		codes.State(stateRaw),
		normalize.CoerceString(address.First("ZIP_Postal_Code_non_normalized", "Postal_Code", "PIN_Code")),
	)

	return models.AddressDetails{
		FullAddress:   fullAddress,
		AddressLine1:  normalize.CoerceString(address.First("First_Line_Of_Address_non_normalized", "Address_Line_1")),
		AddressLine2:  normalize.CoerceString(address.First("Second_Line_Of_Address_non_normalized", "Address_Line_2")),
		AddressLine3:  normalize.CoerceString(address.First("Third_Line_Of_Address_non_normalized", "Address_Line_3")),
		City:          normalize.CoerceString(address.First("City_non_normalized", "City")),
		State:         codes.State(stateRaw),
		StateCode:     normalize.CoerceString(stateRaw),
		PINCode:       normalize.CoerceString(address.First("ZIP_Postal_Code_non_normalized", "Postal_Code", "PIN_Code")),
		Country:       normalize.CoerceString(address.First("CountryCode_non_normalized", "Country_Code")),
		Category:      normalize.CoerceString(address.First("Address_indicator_non_normalized", "Address_Category")),
		ResidenceCode: normalize.CoerceString(address.First("Residence_code_non_normalized", "Residence_Code")),
	}
}

// joinAddressParts joins the non-empty address parts with ", ".
func joinAddressParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

// buildAccountsInformation derives the cross-cutting fields from the
// assembled account records: the credit-card subset, the unique bank list
// over that subset and the unique full-address list over all accounts, each
// preserving order of first occurrence.
func buildAccountsInformation(accounts []models.AccountRecord) models.CreditAccountsInformation {
	totalCreditCards := 0
	banks := make([]string, 0)
	seenBanks := make(map[string]bool)
	addresses := make([]string, 0)
	seenAddresses := make(map[string]bool)

	for _, account := range accounts {
		if creditCardTypeCodes[account.AccountTypeCode] {
			totalCreditCards++
			if account.SubscriberName != "" && !seenBanks[account.SubscriberName] {
				seenBanks[account.SubscriberName] = true
				banks = append(banks, account.SubscriberName)
			}
		}
		if account.AddressDetails.FullAddress != "" && !seenAddresses[account.AddressDetails.FullAddress] {
			seenAddresses[account.AddressDetails.FullAddress] = true
			addresses = append(addresses, account.AddressDetails.FullAddress)
		}
	}

	return models.CreditAccountsInformation{
		TotalCreditCards:   totalCreditCards,
		BanksOfCreditCards: banks,
		Addresses:          addresses,
		Accounts:           accounts,
	}
}

func buildEnquiries(root xmltree.Node) []models.EnquiryRecord {
	raw := root.Lookup("CAPS.CAPS_Application_Details", nil)
	if raw == nil {
		raw = root.Lookup("CAPS_Enquiry", nil)
	}
	if raw == nil {
		raw = root.Lookup("CAPS.CAPS_Details", nil)
	}

	nodes := xmltree.AsSlice(raw)
	enquiries := make([]models.EnquiryRecord, 0, len(nodes))
	for _, e := range nodes {
		enquiries = append(enquiries, models.EnquiryRecord{
			EnquiryDate:        normalize.FormatReportDate(e.First("Date_Of_Application", "Enquiry_Date", "Application_Date")),
			EnquiryPurpose:     codes.EnquiryPurpose(e.First("Enquiry_Reason", "Enquiry_Purpose")),
			EnquiryPurposeCode: normalize.CoerceString(e.First("Enquiry_Reason", "Enquiry_Purpose")),
			EnquiryAmount:      normalize.CoerceNumber(e.First("Amount_Financed", "Enquiry_Amount")),
			Subscriber:         normalize.CoerceString(e.First("Subscriber_Name", "Member_Name")),
			SubscriberCode:     normalize.CoerceString(e.First("Member_Short_Name", "Subscriber_Code")),
			EnquiryStage:       normalize.CoerceString(e.First("Enquiry_Stage")),
			CreditType:         normalize.CoerceString(e.First("Credit_Type")),
		})
	}
	return enquiries
}

func buildMetadata(root xmltree.Node) models.ReportMetadata {
	return models.ReportMetadata{
		ReportDate:    normalize.FormatReportDate(firstValue(root.Lookup("Header.ReportDate", nil), root.Lookup("CreditProfileHeader.ReportDate", nil))),
		ReportTime:    normalize.CoerceString(firstValue(root.Lookup("Header.ReportTime", nil), root.Lookup("CreditProfileHeader.ReportTime", nil))),
		ReportNumber:  normalize.CoerceString(firstValue(root.Lookup("CreditProfileHeader.ReportNumber", nil), root.Lookup("Header.ReportNumber", nil))),
		Version:       normalize.CoerceString(root.Lookup("CreditProfileHeader.Version", nil)),
		EnquiryReason: codes.EnquiryPurpose(root.Lookup("Current_Application.Current_Application_Details.Enquiry_Reason", nil)),
	}
}
