package main

import (
	"strings"
	"time"
)

// Config holds the generator options
type Config struct {
	db struct {
		DSN        string
		Driver     string
		Schema     string
		Retries    int
		RetryDelay time.Duration
		Timeout    time.Duration
	}

	Input  string
	Output string

	GoOutput       string
	GoPackage      string
	MarkdownOutput string
	ManifestOutput string
}

// Schemas returns the list of schemas to introspect
func (c Config) Schemas() []string {
	result := []string{}
	for _, v := range strings.Split(c.db.Schema, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
