package middleware

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

type AlertConfig struct {
	WebhookURL  string
	Environment string
	AppName     string
	LogsURL     string
}

type ErrorAlertMiddleware struct {
	config        AlertConfig
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.RWMutex
	alertCooldown time.Duration // prevent spam
}

func NewErrorAlertMiddleware(config AlertConfig) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute, // Don't alert same error more than once per 10min
	}
}

// HTTP Middleware - wraps HTTP handlers
func (m *ErrorAlertMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer m.recoverAndAlert(fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

// Gateway Event Handler Wrapper - keeps a panicking or failing event handler
// from taking the session down
func (m *ErrorAlertMiddleware) WrapEventHandler(eventName string, handler func() error) {
	defer m.recoverAndAlert(fmt.Sprintf("Gateway event: %s", eventName))

	if err := handler(); err != nil {
		log.Printf("❌ Event handler %s failed: %v", eventName, err)
		m.alertOnError(err, fmt.Sprintf("Gateway event: %s", eventName))
	}
}

// Background Task Wrapper
func (m *ErrorAlertMiddleware) WrapBackgroundTask(taskName string, task func() error) func() error {
	return func() error {
		defer m.recoverAndAlert(fmt.Sprintf("Background task: %s", taskName))

		if err := task(); err != nil {
			m.alertOnError(err, fmt.Sprintf("Background task: %s", taskName))
			return err
		}
		return nil
	}
}

// Core error alerting logic
func (m *ErrorAlertMiddleware) alertOnError(err error, context string) {
	errorMsg := fmt.Sprintf("%s: %v", context, err)

	// Create hash of error for deduplication
	hash := fmt.Sprintf("%x", md5.Sum([]byte(errorMsg)))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Check if we've alerted for this error recently
	if lastAlert, exists := m.alertedErrors[hash]; exists {
		if time.Since(lastAlert) < m.alertCooldown {
			return // Skip alert - too recent
		}
	}

	// Send alert asynchronously
	go m.sendWebhookAlert(errorMsg, context)
	m.alertedErrors[hash] = time.Now()
}

func (m *ErrorAlertMiddleware) recoverAndAlert(context string) {
	if r := recover(); r != nil {
		errorMsg := fmt.Sprintf("%s: PANIC - %v", context, r)
		log.Printf("❌ %s", errorMsg)
		go m.sendWebhookAlert(errorMsg, context+" (PANIC)")
	}
}

// sendWebhookAlert posts the error to a Discord webhook.
func (m *ErrorAlertMiddleware) sendWebhookAlert(errorMsg, context string) {
	if m.config.WebhookURL == "" {
		return // alerts disabled
	}

	envPrefix := ""
	if m.config.Environment == "dev" {
		envPrefix = "[dev] "
	}

	content := fmt.Sprintf("🚨 %s**%s** error\n*Context:* %s\n```%s```",
		envPrefix, m.config.AppName, context, errorMsg)
	if m.config.LogsURL != "" {
		content += fmt.Sprintf("\n🔗 Logs: %s", m.config.LogsURL)
	}

	payloadBytes, _ := json.Marshal(map[string]any{"content": content})

	resp, err := http.Post(m.config.WebhookURL, "application/json",
		strings.NewReader(string(payloadBytes)))
	if err != nil {
		log.Printf("❌ Failed to send webhook alert: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("❌ Webhook alert failed with status: %d", resp.StatusCode)
	}
}
