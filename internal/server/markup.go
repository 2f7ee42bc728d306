package server

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

func escapeHTML(text string) string {
	return html.EscapeString(text)
}

// promptBlock wraps plain prompt text in the reveal/hide block, open by
// default so the prompt reads immediately.
func promptBlock(text string) string {
	return fmt.Sprintf(
		`<details class="prompt-reveal" open><summary>Prompt</summary><p>%s</p></details>`,
		escapeHTML(text),
	)
}

// ensurePromptMarkup applies the load-time policy: content that was already
// rendered to markup before saving is kept verbatim, plain text is wrapped
// fresh.
func ensurePromptMarkup(stored string) string {
	if looksLikeMarkup(stored) {
		return stored
	}
	return promptBlock(stored)
}

func looksLikeMarkup(text string) bool {
	open := strings.IndexByte(text, '<')
	if open < 0 {
		return false
	}
	return strings.IndexByte(text[open:], '>') > 0
}

// resourceBlock builds the display markup for a round's attached resource.
// Media paths are author-supplied and embedded as-is; answer text is
// free-form input and must be escaped.
func resourceBlock(kind, path, answer string) (string, error) {
	switch kind {
	case resourceText, "":
		return `<span class="badge badge-text">Text only</span>`, nil
	case resourceAudio:
		if path == "" {
			return "", errors.New("resource path is required")
		}
		return fmt.Sprintf(`<audio controls preload="none" src="%s"></audio>`, path), nil
	case resourceImage:
		if path == "" {
			return "", errors.New("resource path is required")
		}
		return fmt.Sprintf(`<img class="round-media" src="%s" alt="round image"/>`, path), nil
	case resourceVideo:
		if path == "" {
			return "", errors.New("resource path is required")
		}
		return fmt.Sprintf(`<video controls preload="none" class="round-media" src="%s"></video>`, path), nil
	case resourceAnswer:
		if strings.TrimSpace(answer) == "" {
			return "", errors.New("answer text is required")
		}
		return fmt.Sprintf(
			`<details class="answer-reveal"><summary>Reveal answer</summary><p>%s</p></details>`,
			escapeHTML(answer),
		), nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", kind)
	}
}
