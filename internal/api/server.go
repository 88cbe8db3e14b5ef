package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/abadojack/whatlanggo"
	"spamsift/internal/adapter/cache"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/domain"
	"spamsift/internal/usecase"
)

// Server wraps a trained classifier as an HTTP inference service.
type Server struct {
	classifier     *classifier.Classifier
	cache          *cache.PredictionCache
	modelName      string
	detectLanguage bool
}

func NewServer(c *classifier.Classifier, predictionCache *cache.PredictionCache, modelName string, detectLanguage bool) *Server {
	return &Server{
		classifier:     c,
		cache:          predictionCache,
		modelName:      modelName,
		detectLanguage: detectLanguage,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePreview)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/predict", s.handlePredict)
	mux.HandleFunc("/explain", s.handleExplain)
	mux.HandleFunc("/model-card", s.handleModelCard)
	return mux
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Prediction    string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Language      string             `json:"language,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}

	prediction, cached := s.cache.Get(text)
	if !cached {
		var err error
		prediction, err = s.classifier.Predict(text)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.cache.Put(text, prediction)
	}

	response := predictResponse{
		Prediction:    prediction.Label,
		Confidence:    prediction.Confidence,
		Probabilities: prediction.Probabilities,
	}
	if s.detectLanguage {
		info := whatlanggo.Detect(text)
		response.Language = whatlanggo.LangToString(info.Lang)
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}

	explanation, err := s.classifier.Explain(text, 0)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explanation)
}

func (s *Server) handleModelCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	card := usecase.BuildModelCard(s.classifier, s.modelName, domain.Metrics{})
	writeJSON(w, http.StatusOK, map[string]string{"card": card})
}

func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	var request predictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return "", false
	}
	if request.Text == "" {
		http.Error(w, "text must not be empty", http.StatusBadRequest)
		return "", false
	}
	return request.Text, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrData) {
		status = http.StatusBadRequest
	} else if errors.Is(err, domain.ErrModel) || errors.Is(err, domain.ErrFormat) {
		status = http.StatusConflict
	}
	log.Printf("request failed: %v", err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
