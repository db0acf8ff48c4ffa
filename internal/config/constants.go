package config

// Default paths used when the corresponding env vars are unset
const (
	// DefaultDatabasePath is the default path for the contact database
	DefaultDatabasePath = "./rolodex.db"

	// DefaultVCardPath is the default output file for vCard exports
	DefaultVCardPath = "./contacts.vcf"

	// DefaultCSVPath is the default output file for greeting-card CSV exports
	DefaultCSVPath = "./nenga.csv"
)
