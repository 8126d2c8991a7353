package note

// Taxonomy identifiers used in tagged output. These follow the reporting
// taxonomy for nature-of-operations and going-concern disclosures.
const (
	TagNoteRoot     = "NatureOfOperationsAndGoingConcernNote"
	TagHeader       = "NatureOfOperationsAndGoingConcernHeader"
	TagOperations   = "DescriptionOfNatureOfEntitysOperationsAndPrincipalActivities"
	TagGoingConcern = "DescriptionOfUncertaintiesOfEntitysAbilityToContinueAsGoingConcern"

	TagCompanyName       = "NameOfReportingEntityOrOtherMeansOfIdentification"
	TagIncorporationDate = "IncorporationDate"
	TagRegisteredAddress = "AddressOfRegisteredOfficeOfEntity"
	TagTradingSymbol     = "EntityPrimaryTradingSymbol"
	TagFinancialAmount   = "Financial_Amount_Placeholder"
	TagFinancialConcept  = "Financial_Concept_Placeholder"
	TagGeneralDate       = "Date_Placeholder"
)
