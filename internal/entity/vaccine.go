package entity

// Medicinal product codes (EU DCC value set "vaccine-medicinal-product").
const (
	VaccineAstrazeneca = "EU/1/21/1529"
	VaccineJanssen     = "EU/1/20/1525"
	VaccinePfizer      = "EU/1/20/1528"
	VaccineModerna     = "EU/1/20/1507"
)

var vaccineNames = map[string]string{
	VaccineAstrazeneca: "Astrazeneca",
	VaccineJanssen:     "Johnson & Johnson",
	VaccinePfizer:      "Pfizer",
	VaccineModerna:     "Moderna",
}

// VaccineName translates a product code; unknown codes are returned as-is.
func VaccineName(code string) string {
	if name, ok := vaccineNames[code]; ok {
		return name
	}

	return code
}
