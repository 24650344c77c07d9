package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prateeksteaparty/vital-wellness/models"
)

// MLService calls the external ranking/prediction engine. The engine is an
// opaque scoring oracle: it reads the stored feedback adjustments and returns
// ranked nutrient recommendations.
type MLService struct {
	client  *http.Client
	baseURL string
}

func NewMLService() *MLService {
	base := os.Getenv("ML_SERVER_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return &MLService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: base,
	}
}

type mlUserDetails struct {
	UserID         uint     `json:"userId"`
	Gender         string   `json:"gender"`
	DietPreference string   `json:"dietPreference"`
	Lifestyle      string   `json:"lifestyle"`
	Allergies      []string `json:"allergies"`
}

type mlPredictRequest struct {
	Text        string         `json:"text"`
	UserDetails mlUserDetails  `json:"userDetails"`
	Feedbacks   []FeedbackView `json:"feedbacks"`
}

// Recommendation is one ranked suggestion from the prediction engine.
type Recommendation struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	FoodSources string  `json:"food_sources"`
	Confidence  float64 `json:"confidence"`
	Citation    string  `json:"citation"`
}

type mlPredictResponse struct {
	Message         string           `json:"message"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Predict forwards a symptom query plus the user's profile and feedback
// history to the prediction engine.
func (m *MLService) Predict(user *models.User, text string, feedbacks []FeedbackView) ([]Recommendation, error) {
	if feedbacks == nil {
		feedbacks = []FeedbackView{}
	}
	payload := mlPredictRequest{
		Text: text,
		UserDetails: mlUserDetails{
			UserID:         user.ID,
			Gender:         user.Gender,
			DietPreference: user.DietPreference,
			Lifestyle:      user.Lifestyle,
			Allergies:      user.AllergyList(),
		},
		Feedbacks: feedbacks,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Post(m.baseURL+"/predict", "application/json", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("ml server unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml server returned status %d", resp.StatusCode)
	}

	var out mlPredictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("ml server response decode failed: %w", err)
	}
	return out.Recommendations, nil
}
