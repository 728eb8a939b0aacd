package main

import (
	"log"

	"library-backend/internal/shared/utils"
)

// Config holds the worker-side configuration
type Config struct {
	RedisAddr       string
	SMTPHost        string
	SMTPPort        string
	SMTPFrom        string
	LateLoanMessage string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:       utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		SMTPHost:        utils.GetEnvVariable("SMTP_HOST", "localhost"),
		SMTPPort:        utils.GetEnvVariable("SMTP_PORT", "1025"),
		SMTPFrom:        utils.GetEnvVariable("SMTP_FROM", "noreply@library.dev"),
		LateLoanMessage: utils.GetEnvVariable("JOB_LATE_LOAN_MESSAGE", "You have an overdue book loan. Please return it to the library."),
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s",
		cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)

	return cfg
}
