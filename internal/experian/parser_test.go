package experian

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crednorm/experian-report/internal/parsererror"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<INProfileResponse>
	<CreditProfileHeader>
		<ReportDate>20230615</ReportDate>
		<ReportTime>143052</ReportTime>
		<ReportNumber>1688000123456789</ReportNumber>
		<Version>V2.4</Version>
	</CreditProfileHeader>
	<Current_Application>
		<Current_Application_Details>
			<Enquiry_Reason>4</Enquiry_Reason>
			<Current_Applicant_Details>
				<First_Name>John</First_Name>
				<Last_Name>Doe</Last_Name>
				<Gender_Code>1</Gender_Code>
				<IncomeTaxPan>ABCDE1234F</IncomeTaxPan>
				<Date_Of_Birth_Applicant>19900115</Date_Of_Birth_Applicant>
				<MobilePhoneNumber>9876543210</MobilePhoneNumber>
				<EMailId>john.doe@example.com</EMailId>
			</Current_Applicant_Details>
		</Current_Application_Details>
	</Current_Application>
	<SCORE>
		<BureauScore>750</BureauScore>
		<BureauScoreConfidLevel>H</BureauScoreConfidLevel>
	</SCORE>
	<CAIS_Account>
		<CAIS_Summary>
			<Credit_Account>
				<CreditAccountTotal>2</CreditAccountTotal>
				<CreditAccountActive>2</CreditAccountActive>
				<CreditAccountClosed>0</CreditAccountClosed>
				<CreditAccountDefault>0</CreditAccountDefault>
			</Credit_Account>
			<Total_Outstanding_Balance>
				<Outstanding_Balance_Secured>500000</Outstanding_Balance_Secured>
				<Outstanding_Balance_UnSecured>45000</Outstanding_Balance_UnSecured>
				<Outstanding_Balance_All>545000</Outstanding_Balance_All>
			</Total_Outstanding_Balance>
		</CAIS_Summary>
		<CAIS_Account_DETAILS>
			<Subscriber_Name>HDFC BANK</Subscriber_Name>
			<Account_Number>XXXX1234</Account_Number>
			<Account_Type>10</Account_Type>
			<Portfolio_Type>R</Portfolio_Type>
			<Account_Status>11</Account_Status>
			<Open_Date>20200310</Open_Date>
			<Current_Balance>45,000</Current_Balance>
			<Credit_Limit_Amount>100000</Credit_Limit_Amount>
			<Amount_Past_Due>0</Amount_Past_Due>
			<Payment_Rating>0</Payment_Rating>
			<SuitFiled_WilfulDefault>02</SuitFiled_WilfulDefault>
			<AccountHoldertypeCode>1</AccountHoldertypeCode>
			<CAIS_Holder_Details>
				<First_Name_Non_Normalized>John</First_Name_Non_Normalized>
				<Surname_Non_Normalized>Doe</Surname_Non_Normalized>
				<Income_TAX_PAN>ABCDE1234F</Income_TAX_PAN>
				<Date_of_birth>19900115</Date_of_birth>
				<Gender_Code>1</Gender_Code>
			</CAIS_Holder_Details>
			<CAIS_Holder_Address_Details>
				<First_Line_Of_Address_non_normalized>12 MG Road</First_Line_Of_Address_non_normalized>
				<City_non_normalized>Bengaluru</City_non_normalized>
				<State_non_normalized>29</State_non_normalized>
				<ZIP_Postal_Code_non_normalized>560001</ZIP_Postal_Code_non_normalized>
			</CAIS_Holder_Address_Details>
			<CAIS_Account_History>
				<Year>2023</Year>
				<Month>05</Month>
				<Days_Past_Due>0</Days_Past_Due>
			</CAIS_Account_History>
		</CAIS_Account_DETAILS>
		<CAIS_Account_DETAILS>
			<Subscriber_Name>SBI</Subscriber_Name>
			<Account_Number>XXXX9876</Account_Number>
			<Account_Type>02</Account_Type>
			<Portfolio_Type>M</Portfolio_Type>
			<Account_Status>71</Account_Status>
			<Open_Date>20180601</Open_Date>
			<Current_Balance>500000</Current_Balance>
			<Highest_Credit_or_Original_Loan_Amount>750000</Highest_Credit_or_Original_Loan_Amount>
			<Scheduled_Monthly_Payment_Amount>12500</Scheduled_Monthly_Payment_Amount>
			<CAIS_Holder_Address_Details>
				<First_Line_Of_Address_non_normalized>12 MG Road</First_Line_Of_Address_non_normalized>
				<City_non_normalized>Bengaluru</City_non_normalized>
				<State_non_normalized>29</State_non_normalized>
				<ZIP_Postal_Code_non_normalized>560001</ZIP_Postal_Code_non_normalized>
			</CAIS_Holder_Address_Details>
		</CAIS_Account_DETAILS>
	</CAIS_Account>
	<TotalCAPS_Summary>
		<TotalCAPSLast7Days>0</TotalCAPSLast7Days>
		<TotalCAPSLast30Days>1</TotalCAPSLast30Days>
		<TotalCAPSLast90Days>2</TotalCAPSLast90Days>
		<TotalCAPSLast180Days>3</TotalCAPSLast180Days>
	</TotalCAPS_Summary>
	<CAPS>
		<CAPS_Application_Details>
			<Date_Of_Application>20230520</Date_Of_Application>
			<Enquiry_Reason>4</Enquiry_Reason>
			<Amount_Financed>200000</Amount_Financed>
			<Subscriber_Name>ICICI BANK</Subscriber_Name>
		</CAPS_Application_Details>
	</CAPS>
</INProfileResponse>`

func TestParse_FullReport(t *testing.T) {
	report, err := Parse([]byte(sampleReport))
	require.NoError(t, err)
	require.NotNil(t, report)

	basic := report.BasicDetails
	assert.Equal(t, "John Doe", basic.Name)
	assert.Equal(t, "15/01/1990", basic.DateOfBirth)
	assert.Equal(t, "Male", basic.Gender)
	assert.Equal(t, "ABCDE1234F", basic.PAN)
	assert.Equal(t, "9876543210", basic.Mobile)
	assert.Equal(t, "john.doe@example.com", basic.Email)

	score := report.CreditScore
	assert.Equal(t, float64(750), score.BureauScore)
	assert.Equal(t, "H", score.ConfidenceLevel)
	assert.NotNil(t, score.ReasonCodes)
	assert.Empty(t, score.ReasonCodes)

	summary := report.ReportSummary
	assert.Equal(t, float64(2), summary.TotalAccounts)
	assert.Equal(t, float64(2), summary.ActiveAccounts)
	assert.Equal(t, float64(0), summary.ClosedAccounts)
	assert.Equal(t, float64(545000), summary.CurrentBalance)
	assert.Equal(t, float64(500000), summary.SecuredAmount)
	assert.Equal(t, float64(45000), summary.UnsecuredAmount)
	assert.Equal(t, float64(1), summary.Last30DaysEnquiries)
	assert.Equal(t, float64(3), summary.Last180DaysEnquiries)

	info := report.CreditAccountsInformation
	assert.Equal(t, 1, info.TotalCreditCards)
	assert.Equal(t, []string{"HDFC BANK"}, info.BanksOfCreditCards)
	require.Len(t, info.Accounts, 2)
	assert.Len(t, info.Addresses, 1)

	card := info.Accounts[0]
	assert.Equal(t, "HDFC BANK", card.SubscriberName)
	assert.Equal(t, "Credit Card", card.AccountType)
	assert.Equal(t, "10", card.AccountTypeCode)
	assert.Equal(t, "Revolving", card.PortfolioType)
	assert.Equal(t, "Active", card.AccountStatus)
	assert.Equal(t, "Individual", card.OwnershipIndicator)
	assert.Equal(t, "10/03/2020", card.OpenDate)
	assert.Equal(t, float64(45000), card.CurrentBalance)
	assert.Equal(t, float64(100000), card.CreditLimit)
	assert.Equal(t, float64(0), card.AmountOverdue)
	assert.Equal(t, "Standard/Current", card.PaymentRatingDescription)
	assert.Equal(t, "No", card.SuitFiled)
	assert.Equal(t, "John Doe", card.HolderDetails.FullName)
	assert.Equal(t, "12 MG Road, Bengaluru, Karnataka, 560001", card.AddressDetails.FullAddress)
	assert.Equal(t, "Karnataka", card.AddressDetails.State)
	require.Len(t, card.AccountHistory, 1)
	assert.Equal(t, "2023", card.AccountHistory[0].Year)

	loan := info.Accounts[1]
	assert.Equal(t, "Housing Loan", loan.AccountType)
	assert.Equal(t, "Active", loan.AccountStatus)
	assert.Equal(t, float64(750000), loan.HighestCredit)
	// No explicit credit limit, falls back to the highest-credit amount
	assert.Equal(t, float64(750000), loan.CreditLimit)
	assert.Equal(t, float64(12500), loan.EMI)
	assert.Equal(t, "Unknown", loan.SuitFiled)

	require.Len(t, report.CreditEnquiries, 1)
	enquiry := report.CreditEnquiries[0]
	assert.Equal(t, "20/05/2023", enquiry.EnquiryDate)
	assert.Equal(t, "Credit Card", enquiry.EnquiryPurpose)
	assert.Equal(t, float64(200000), enquiry.EnquiryAmount)
	assert.Equal(t, "ICICI BANK", enquiry.Subscriber)

	meta := report.Metadata
	assert.Equal(t, "15/06/2023", meta.ReportDate)
	assert.Equal(t, "143052", meta.ReportTime)
	assert.Equal(t, "1688000123456789", meta.ReportNumber)
	assert.Equal(t, "V2.4", meta.Version)
	assert.Equal(t, "Credit Card", meta.EnquiryReason)
}

func TestParse_NameFallsBackToHolder(t *testing.T) {
	xml := `<INProfileResponse>
		<CAIS_Account>
			<CAIS_Account_DETAILS>
				<Account_Type>05</Account_Type>
				<CAIS_Holder_Details>
					<First_Name_Non_Normalized>Priya</First_Name_Non_Normalized>
					<Surname_Non_Normalized>Sharma</Surname_Non_Normalized>
				</CAIS_Holder_Details>
			</CAIS_Account_DETAILS>
		</CAIS_Account>
	</INProfileResponse>`

	report, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", report.BasicDetails.Name)
}

func TestParse_AbsentEnquiryReasonLeavesMetadataBlank(t *testing.T) {
	report, err := Parse([]byte(`<INProfileResponse><SCORE><BureauScore>700</BureauScore></SCORE></INProfileResponse>`))
	require.NoError(t, err)
	assert.Equal(t, "", report.Metadata.EnquiryReason)
}

func TestParse_NameDefaultsWhenAbsent(t *testing.T) {
	report, err := Parse([]byte(`<INProfileResponse><SCORE><BureauScore>700</BureauScore></SCORE></INProfileResponse>`))
	require.NoError(t, err)
	assert.Equal(t, "Name Not Available", report.BasicDetails.Name)
}

func TestParse_LastNameOnly(t *testing.T) {
	xml := `<INProfileResponse>
		<Current_Application>
			<Current_Application_Details>
				<Current_Applicant_Details>
					<Last_Name>Doe</Last_Name>
				</Current_Applicant_Details>
			</Current_Application_Details>
		</Current_Application>
	</INProfileResponse>`

	report, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "Doe", report.BasicDetails.Name)
}

func TestParse_AlternateRootElements(t *testing.T) {
	for _, root := range []string{"INProfileResponse", "EXPERIAN", "CreditReport"} {
		xml := "<" + root + "><SCORE><BureauScore>712</BureauScore></SCORE></" + root + ">"
		report, err := Parse([]byte(xml))
		require.NoError(t, err, root)
		assert.Equal(t, float64(712), report.CreditScore.BureauScore, root)
	}
}

func TestParse_UnknownRootStillParses(t *testing.T) {
	report, err := Parse([]byte(`<SomethingElse><SCORE><BureauScore>640</BureauScore></SCORE></SomethingElse>`))
	require.NoError(t, err)
	// The wrapper is unknown so lookups run against the whole tree and miss
	assert.Equal(t, float64(0), report.CreditScore.BureauScore)
}

func TestParse_InvalidXML(t *testing.T) {
	report, err := Parse([]byte(`{"not": "xml"}`))
	assert.Nil(t, report)
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_EmptySlicesSerializeAsArrays(t *testing.T) {
	report, err := Parse([]byte(`<INProfileResponse></INProfileResponse>`))
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"accounts":[]`)
	assert.Contains(t, body, `"banksOfCreditCards":[]`)
	assert.Contains(t, body, `"addresses":[]`)
	assert.Contains(t, body, `"creditEnquiries":[]`)
	assert.Contains(t, body, `"reasonCodes":[]`)
	assert.NotContains(t, body, "null")
}

func TestParse_SingleAccountBecomesList(t *testing.T) {
	xml := `<INProfileResponse>
		<CAIS_Account>
			<CAIS_Account_DETAILS>
				<Subscriber_Name>AXIS BANK</Subscriber_Name>
				<Account_Type>10</Account_Type>
			</CAIS_Account_DETAILS>
		</CAIS_Account>
	</INProfileResponse>`

	report, err := Parse([]byte(xml))
	require.NoError(t, err)
	require.Len(t, report.CreditAccountsInformation.Accounts, 1)
	assert.Equal(t, 1, report.CreditAccountsInformation.TotalCreditCards)
	assert.Equal(t, []string{"AXIS BANK"}, report.CreditAccountsInformation.BanksOfCreditCards)
}

func TestParse_DuplicateBanksDeduplicated(t *testing.T) {
	xml := `<INProfileResponse>
		<CAIS_Account>
			<CAIS_Account_DETAILS>
				<Subscriber_Name>HDFC BANK</Subscriber_Name>
				<Account_Type>10</Account_Type>
			</CAIS_Account_DETAILS>
			<CAIS_Account_DETAILS>
				<Subscriber_Name>HDFC BANK</Subscriber_Name>
				<Account_Type>31</Account_Type>
			</CAIS_Account_DETAILS>
			<CAIS_Account_DETAILS>
				<Subscriber_Name>SBI CARD</Subscriber_Name>
				<Account_Type>35</Account_Type>
			</CAIS_Account_DETAILS>
		</CAIS_Account>
	</INProfileResponse>`

	report, err := Parse([]byte(xml))
	require.NoError(t, err)
	info := report.CreditAccountsInformation
	assert.Equal(t, 3, info.TotalCreditCards)
	assert.Equal(t, []string{"HDFC BANK", "SBI CARD"}, info.BanksOfCreditCards)
}

func TestParse_ReasonCodes(t *testing.T) {
	single := `<INProfileResponse><SCORE><ReasonCode>R1</ReasonCode></SCORE></INProfileResponse>`
	repeated := `<INProfileResponse><SCORE><ReasonCode>R1</ReasonCode><ReasonCode>R2</ReasonCode></SCORE></INProfileResponse>`

	report, err := Parse([]byte(single))
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, report.CreditScore.ReasonCodes)

	report, err = Parse([]byte(repeated))
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, report.CreditScore.ReasonCodes)
}
