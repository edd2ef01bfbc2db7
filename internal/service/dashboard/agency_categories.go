package dashboard

// agencyCategoryTable classifies known agencies. The agency-category filter
// slot keys off this table; the presentation layer also uses it for the
// agency badge.
var agencyCategoryTable = map[string]AgencyCategory{
	"Global Travel Solutions": AgencyCategoryLarge,
	"Sunset Travels":          AgencyCategoryManaged,
	"Mountain Expeditions":    AgencyCategoryValue,
	"Luxury Escapes":          AgencyCategoryLarge,
}

// AgencyCategoryOf looks up the category for an agency name.
func AgencyCategoryOf(agencyName string) (AgencyCategory, bool) {
	c, ok := agencyCategoryTable[agencyName]
	return c, ok
}
