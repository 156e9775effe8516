package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Token signing
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Razorpay configuration
	RazorpayKeyID     string `yaml:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `yaml:"RAZORPAY_KEY_SECRET"`

	// Object storage / image serving
	UseS3        bool   `yaml:"USE_S3"`
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
	CDNURL       string `yaml:"CDN_URL"`
}

var config Config

// LoadConfig reads config.yaml when present; any key left empty there falls
// back to the process environment in GetConfig.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not read, relying on environment: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

func GetConfig(key string) string {
	value := ""
	switch key {
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "JWT_SECRET":
		value = config.JWTSecret
	case "APP_URL":
		value = config.AppURL
	case "SMTP_HOST":
		value = config.SMTPHost
	case "SMTP_PORT":
		value = config.SMTPPort
	case "SMTP_SENDER_NAME":
		value = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		value = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		value = config.SMTPAuthPassword
	case "RAZORPAY_KEY_ID":
		value = config.RazorpayKeyID
	case "RAZORPAY_KEY_SECRET":
		value = config.RazorpayKeySecret
	case "USE_S3":
		if config.UseS3 {
			value = "true"
		}
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	case "CDN_URL":
		value = config.CDNURL
	}

	if value == "" {
		return os.Getenv(key)
	}
	return value
}
