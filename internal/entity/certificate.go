package entity

import "time"

// Certificate is the vaccination record extracted from a Green Pass.
type Certificate struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	BirthDate         string `json:"birthDate"`
	DoseNumber        int64  `json:"doseNumber"`
	ExpectedDosesToDo int64  `json:"expectedDosesToDo"`
	VaccineName       string `json:"vaccineName"`
	LastDoseTimestamp string `json:"lastDoseTimestamp"`

	// Derived from LastDoseTimestamp; not part of the public response.
	StandardExpiration          time.Time `json:"-"`
	ExpirationIfPatientGotCovid time.Time `json:"-"`
}
