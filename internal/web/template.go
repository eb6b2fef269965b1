package web

// homeTemplate is the single page the UI serves: an add form on top,
// one row per task with Done/Delete buttons below.
const homeTemplate = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Todo CLI + Web</title>
    <style>
      body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; }
      h1 { margin-bottom: 0.5rem; }
      .card { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; margin-top: 1rem; }
      .row { display: flex; align-items: center; justify-content: space-between; gap: 1rem; border-top: 1px solid #eee; padding: 0.75rem 0; }
      .row:first-child { border-top: none; }
      .done { color: #777; text-decoration: line-through; }
      input[type=text] { width: 100%; max-width: 460px; padding: 0.5rem; }
      button { padding: 0.4rem 0.6rem; cursor: pointer; }
      form.inline { display: inline; }
    </style>
  </head>
  <body>
    <h1>Todo App</h1>
    <p>Use this in your browser, or run commands in terminal.</p>
    <div class="card">
      <form method="post" action="/add">
        <input type="text" name="title" placeholder="What do you need to do?" required />
        <button type="submit">Add</button>
      </form>
    </div>
    <div class="card">
      {{- if .Tasks}}
      {{- range .Tasks}}
      <div class="row">
        <div><strong>#{{.ID}}</strong> <span class="{{if .Done}}done{{end}}">{{.Title}}</span></div>
        <div>
          {{- if not .Done}}
          <form method="post" action="/done/{{.ID}}" class="inline">
            <button type="submit">Done</button>
          </form>
          {{- end}}
          <form method="post" action="/delete/{{.ID}}" class="inline">
            <button type="submit">Delete</button>
          </form>
        </div>
      </div>
      {{- end}}
      {{- else}}
      <p>No todos yet.</p>
      {{- end}}
    </div>
  </body>
</html>
`
