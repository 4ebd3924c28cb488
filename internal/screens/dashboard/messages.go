package dashboard

import (
	"github.com/abhisek/churnboard/internal/churn"
)

// predictionMsg is sent when a triggered prediction finishes.
type predictionMsg struct {
	Result churn.PredictionResult
	Err    error
}
