package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home(summaries []NightSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Game Night</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Game Night</span>
        <h1>Run the whole evening from one page.</h1>
        <p>Rounds, countdowns, and progress — start a night or pick up where you left off.</p>
      </header>

      <section class="panel">
        <div>
          <h2>Start a night</h2>
          <p>Creates a fresh round list you can edit before the guests arrive.</p>
        </div>
        <button id="createNight" class="primary">New night</button>
        <div id="createResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Your nights</h2>
        <ul id="nightList" class="night-list">`)
		for _, summary := range summaries {
			_, _ = io.WriteString(w, `
          <li><a href="/nights/`+escape(summary.ID)+`">`+escape(summary.ID)+
				`</a> <span class="muted">`+itoa(summary.Completed)+`/`+itoa(summary.Rounds)+
				` done · code `+escape(summary.ShareCode)+`</span></li>`)
		}
		_, _ = io.WriteString(w, `
        </ul>
      </section>
    </main>
    <script>
      document.getElementById('createNight').addEventListener('click', async () => {
        const res = await fetch('/api/nights', { method: 'POST' });
        if (!res.ok) {
          document.getElementById('createResult').textContent = 'Could not create a night.';
          return;
        }
        const body = await res.json();
        window.location.href = '/nights/' + body.night_id;
      });

      const proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
      const ws = new WebSocket(proto + window.location.host + '/ws/home');
      ws.onmessage = (msg) => {
        const data = JSON.parse(msg.data);
        if (!data.nights) return;
        const list = document.getElementById('nightList');
        list.innerHTML = data.nights.map((n) =>
          '<li><a href="/nights/' + n.id + '">' + n.id + '</a> <span class="muted">' +
          n.completed + '/' + n.rounds + ' done · code ' + n.share_code + '</span></li>'
        ).join('');
      };
    </script>
  </body>
</html>`)
		return nil
	})
}
