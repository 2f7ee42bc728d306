package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NightView is the single-page control surface for one game night: the
// round table, per-round timers, the shared countdown banner, and the
// add-round form. All state arrives over the websocket.
func NightView(nightID string) templ.Component {
	return nightPage(nightID, false)
}

// WatchView is the read-only projection for a shared screen.
func WatchView(nightID string) templ.Component {
	return nightPage(nightID, true)
}

func nightPage(nightID string, readOnly bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Game Night — `+escape(nightID)+`</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body data-night="`+escape(nightID)+`" data-readonly="`+boolAttr(readOnly)+`">
    <main class="shell">
      <header class="nightbar">
        <a href="/" class="back">&larr; All nights</a>
        <div id="aggregate" class="aggregate tier-none">No active timer</div>
        <div class="progress-wrap">
          <div id="progressBar" class="progress-bar"><span id="progressFill"></span></div>
          <span id="progressLabel" class="muted">0/0 done</span>
        </div>
      </header>

      <section class="panel">
        <table class="rounds">
          <thead>
            <tr><th></th><th>Game</th><th>Prompt</th><th>Resource</th><th>Timer</th><th>Done</th><th></th></tr>
          </thead>
          <tbody id="roundRows"></tbody>
        </table>
      </section>
`)
		if !readOnly {
			_, _ = io.WriteString(w, `
      <section class="panel">
        <h2>Add a round</h2>
        <form id="addRound" class="add-form">
          <input name="game_icon" placeholder="Icon" maxlength="8"/>
          <input name="game_name" placeholder="Game name" required/>
          <textarea name="prompt_text" placeholder="Prompt for the table" required></textarea>
          <select name="resource_kind">
            <option value="text">Text only</option>
            <option value="audio">Audio</option>
            <option value="image">Image</option>
            <option value="video">Video</option>
            <option value="answer">Hidden answer</option>
          </select>
          <input name="resource_path" placeholder="Media path or URL"/>
          <input name="answer_text" placeholder="Answer text"/>
          <input name="timer_minutes" type="number" min="0" max="60" value="0"/>
          <input name="timer_seconds" type="number" min="0" max="59" value="0"/>
          <button type="submit" class="primary">Add round</button>
        </form>
        <div id="addResult" class="result"></div>
        <div class="danger-zone">
          <button id="resetAll" class="secondary">Reset all timers</button>
          <button id="restoreDefaults" class="secondary">Restore default rounds</button>
        </div>
      </section>
`)
		}
		_, _ = io.WriteString(w, `
    </main>
    <script src="/static/night.js"></script>
  </body>
</html>`)
		return nil
	})
}

func boolAttr(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
