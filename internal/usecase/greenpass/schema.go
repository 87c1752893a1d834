package greenpass

// Key paths of the EU Digital COVID Certificate, JSON schema 1.x, carried
// as CWT claims inside a COSE_Sign1 envelope.
//
// Only the vaccination group ("v") is mapped. Test ("t") and recovery ("r")
// groups live next to it in the same certificate map.
const (
	// COSE_Sign1 = [protected, unprotected, payload, signature]
	coseIndexPayload = 2

	// CWT claim "hcert" holding the health certificate container.
	claimHCert int64 = -260
	// hcert key of the EU DGC v1 certificate.
	keyEUDGCv1 int64 = 1

	keyName          = "nam"
	keyGivenName     = "gnt"
	keyFamilyName    = "fnt"
	keyDateOfBirth   = "dob"
	keyVaccinations  = "v"
	keyDoseTimestamp = "dt"
	keyDoseNumber    = "dn"
	keyTotalDoses    = "sd"
	keyProduct       = "mp"

	standardValidityMonths  = 9
	recoveredValidityMonths = 6
)
