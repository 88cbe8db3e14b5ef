package api

import (
	"html/template"
	"log"
	"net/http"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>spamsift preview</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; color: #1c2333; }
    h1 { font-size: 1.4rem; }
    textarea { width: 100%; min-height: 90px; font: inherit; padding: 8px; box-sizing: border-box; }
    button { margin-top: 8px; padding: 8px 18px; font: inherit; cursor: pointer; }
    pre { background: #f4f6fb; padding: 12px; border-radius: 6px; overflow-x: auto; }
    .muted { color: #68708a; font-size: 0.9rem; }
  </style>
</head>
<body>
  <h1>spamsift &mdash; {{.ModelName}}</h1>
  <p class="muted">Labels: {{.Labels}} &middot; Vocabulary: {{.VocabularySize}} tokens &middot; Trained: {{.TrainedAt}}</p>
  <textarea id="text" placeholder="Paste a message to classify"></textarea>
  <div>
    <button onclick="call('/predict')">Predict</button>
    <button onclick="call('/explain')">Explain</button>
  </div>
  <pre id="result">&nbsp;</pre>
  <script>
    async function call(path) {
      const text = document.getElementById('text').value;
      const res = await fetch(path, {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({text})
      });
      const body = await res.text();
      try {
        document.getElementById('result').textContent = JSON.stringify(JSON.parse(body), null, 2);
      } catch {
        document.getElementById('result').textContent = body;
      }
    }
  </script>
</body>
</html>
`))

type previewData struct {
	ModelName      string
	Labels         string
	VocabularySize int
	TrainedAt      string
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	artifact := s.classifier.Artifact()
	data := previewData{
		ModelName:      s.modelName,
		Labels:         artifact.PositiveLabel() + " / " + artifact.NegativeLabel(),
		VocabularySize: artifact.VocabularySize,
		TrainedAt:      artifact.TrainedAt,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTemplate.Execute(w, data); err != nil {
		log.Printf("failed to render preview: %v", err)
	}
}
