package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server backend base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-mb maximum upload size in megabytes
//	-credential-file path of the persisted credential file
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var maxUploadMB int
	var credentialFile string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "server", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxUploadMB, "max-upload-mb", 0, "Maximum upload size in MB")
	flag.StringVar(&credentialFile, "credential-file", "", "Persisted credential file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Uploads: Uploads{
			MaxSizeMB: maxUploadMB,
		},
		Session: Session{
			CredentialFile: credentialFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}
