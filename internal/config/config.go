package config

import (
	"github.com/spf13/viper"

	"github.com/mrlokans/rolodex/internal/entities"
)

type (
	Config struct {
		Database
		Export
		ScheduledExport
	}

	Database struct {
		Path string
	}

	Export struct {
		// NameFormat is the process-wide default display order for
		// formatted names; a contact's own name-format field wins.
		NameFormat   entities.NameFormat
		VCardPath    string
		VCardVersion string // "2.1" or "3.0"
		CSVPath      string
	}

	ScheduledExport struct {
		Enabled  bool
		Schedule string // Cron format: "0 6 * * *" = daily at 06:00
		Format   string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_name_format", string(entities.NameFormatLastFirst))
	v.SetDefault("export_vcard_path", DefaultVCardPath)
	v.SetDefault("export_vcard_version", "3.0")
	v.SetDefault("export_csv_path", DefaultCSVPath)
	v.SetDefault("scheduled_export_enabled", false)
	v.SetDefault("scheduled_export_schedule", "0 6 * * *") // Daily at 06:00
	v.SetDefault("scheduled_export_format", "vcard30")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Export: Export{
			NameFormat:   entities.NameFormat(v.GetString("EXPORT_NAME_FORMAT")),
			VCardPath:    v.GetString("EXPORT_VCARD_PATH"),
			VCardVersion: v.GetString("EXPORT_VCARD_VERSION"),
			CSVPath:      v.GetString("EXPORT_CSV_PATH"),
		},
		ScheduledExport: ScheduledExport{
			Enabled:  v.GetBool("SCHEDULED_EXPORT_ENABLED"),
			Schedule: v.GetString("SCHEDULED_EXPORT_SCHEDULE"),
			Format:   v.GetString("SCHEDULED_EXPORT_FORMAT"),
		},
	}
}
