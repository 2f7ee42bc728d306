package server

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxGameNameLength = 64
	maxIconLength     = 8
	maxPromptLength   = 500
	maxAnswerLength   = 280
	maxPathLength     = 512
)

func validateGameName(name string) (string, error) {
	trimmed := normalizeText(name)
	if trimmed == "" {
		return "", errors.New("game name is required")
	}
	if utf8.RuneCountInString(trimmed) > maxGameNameLength {
		return "", fmt.Errorf("game name must be %d characters or fewer", maxGameNameLength)
	}
	return trimmed, nil
}

func validateGameIcon(icon string) (string, error) {
	trimmed := strings.TrimSpace(icon)
	if trimmed == "" {
		return "", nil
	}
	if utf8.RuneCountInString(trimmed) > maxIconLength {
		return "", fmt.Errorf("game icon must be %d characters or fewer", maxIconLength)
	}
	return trimmed, nil
}

func validatePromptText(text string) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", errors.New("prompt is required")
	}
	if utf8.RuneCountInString(trimmed) > maxPromptLength {
		return "", fmt.Errorf("prompt must be %d characters or fewer", maxPromptLength)
	}
	return trimmed, nil
}

func validateAnswerText(text string) (string, error) {
	trimmed := normalizeText(text)
	if utf8.RuneCountInString(trimmed) > maxAnswerLength {
		return "", fmt.Errorf("answer must be %d characters or fewer", maxAnswerLength)
	}
	return trimmed, nil
}

func validateResourcePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if len(trimmed) > maxPathLength {
		return "", fmt.Errorf("resource path must be %d characters or fewer", maxPathLength)
	}
	if strings.ContainsAny(trimmed, "\"'<>") {
		return "", errors.New("resource path contains unsupported characters")
	}
	return trimmed, nil
}

// validateTimerInput bounds the countdown inputs: minutes 0-60, seconds 0-59.
func validateTimerInput(minutes, seconds int) error {
	if minutes < 0 || minutes > maxTimerMinutes {
		return fmt.Errorf("timer minutes must be between 0 and %d", maxTimerMinutes)
	}
	if seconds < 0 || seconds > maxTimerSeconds {
		return fmt.Errorf("timer seconds must be between 0 and %d", maxTimerSeconds)
	}
	return nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}
