package config

import "os"

const (
	DATE_PARSE_FORMAT = "2006-01-02"
	VERSION           = "1.4.2"

	// Per-file ceiling for uploaded identity documents.
	MAX_UPLOAD_SIZE int64 = 10 << 20
)

var API_ENV = os.Getenv("API_ENV")

func GetUploadsDir() string {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func GetTempDir() string {
	dir := os.Getenv("TEMP_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return dir
}

func GetAdminEmail() string {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "bookings@silverhire.example.com"
	}
	return email
}

func GetSenderEmail() string {
	email := os.Getenv("SMTP_FROM")
	if email == "" {
		email = "noreply@silverhire.example.com"
	}
	return email
}

func IsProd() bool {
	return API_ENV == "production"
}
