// File: internal/handlers/widget_handler.go
package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/bizchat-labs/bizchat/internal/repository/business"
)

// markdown renders assistant replies for the widget. Raw HTML in model
// output is never passed through.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// RenderMarkdown converts an assistant reply to HTML. On render failure the
// plain text is returned escaped so the widget always has something to show.
func RenderMarkdown(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return template.HTMLEscapeString(text)
	}
	return buf.String()
}

// WidgetHandler serves the embeddable chat page for a share link.
type WidgetHandler struct {
	Businesses business.BusinessRepository
}

func NewWidgetHandler(businesses business.BusinessRepository) *WidgetHandler {
	return &WidgetHandler{Businesses: businesses}
}

var widgetTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}} | Chat</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f5f5; }
#chat { max-width: 640px; margin: 0 auto; padding: 16px; display: flex; flex-direction: column; height: 100vh; box-sizing: border-box; }
#log { flex: 1; overflow-y: auto; background: #fff; border-radius: 8px; padding: 12px; }
.msg { margin: 8px 0; padding: 8px 12px; border-radius: 8px; max-width: 85%; }
.user { background: #dbeafe; margin-left: auto; }
.assistant { background: #f3f4f6; }
form { display: flex; gap: 8px; margin-top: 12px; }
input { flex: 1; padding: 10px; border: 1px solid #d1d5db; border-radius: 8px; }
button { padding: 10px 16px; border: 0; border-radius: 8px; background: #2563eb; color: #fff; cursor: pointer; }
</style>
</head>
<body>
<div id="chat">
<h2>{{.Name}}</h2>
<div id="log"></div>
<form id="form"><input id="input" placeholder="Ask a question..." autocomplete="off"><button>Send</button></form>
</div>
<script>
const token = {{.Token}};
let visitorId = localStorage.getItem("visitor_id_" + token) || "";
const log = document.getElementById("log");
function add(role, html) {
  const div = document.createElement("div");
  div.className = "msg " + role;
  div.innerHTML = html;
  log.appendChild(div);
  log.scrollTop = log.scrollHeight;
}
document.getElementById("form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const input = document.getElementById("input");
  const text = input.value.trim();
  if (!text) return;
  add("user", text.replace(/</g, "&lt;"));
  input.value = "";
  const res = await fetch("/chat/" + token + "/message", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({message: text, visitor_id: visitorId}),
  });
  const data = await res.json();
  if (data.visitor_id) {
    visitorId = data.visitor_id;
    localStorage.setItem("visitor_id_" + token, visitorId);
  }
  add("assistant", data.reply_html || (data.error || "Something went wrong."));
});
</script>
</body>
</html>
`))

// ServeWidget renders the chat page for the business behind the token.
func (h *WidgetHandler) ServeWidget(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	biz, err := h.Businesses.FindByChatToken(r.Context(), token)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	widgetTemplate.Execute(w, map[string]string{
		"Name":  biz.Name,
		"Token": biz.ChatToken,
	})
}
