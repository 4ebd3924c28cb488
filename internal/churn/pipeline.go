package churn

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/churnboard/internal/artifact"
)

// Pipeline runs encode, scale and invoke against one loaded artifact bundle.
// It is built once at startup and never mutated, so a single value can serve
// every request.
type Pipeline struct {
	encoder    *Encoder
	scaler     artifact.Scaler
	classifier artifact.Classifier
	log        logrus.FieldLogger
}

// ColumnInfo describes one schema column for display.
type ColumnInfo struct {
	Name   string
	Mapped bool
}

// ModelInfo summarizes the loaded artifacts.
type ModelInfo struct {
	ClassifierKind string
	ScalerKind     string
	NumFeatures    int
	Columns        []ColumnInfo
}

// NewPipeline binds the encoder to the bundle's schema. Unmapped schema
// columns are logged but do not fail construction. A nil log discards output.
func NewPipeline(b *artifact.Bundle, log logrus.FieldLogger) (*Pipeline, error) {
	if b == nil || b.Classifier == nil || b.Scaler == nil {
		return nil, fmt.Errorf("incomplete artifact bundle")
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if err := artifact.CheckFeatureOrder(b.Classifier, b.Schema); err != nil {
		return nil, err
	}
	enc, err := NewEncoder(b.Schema)
	if err != nil {
		return nil, err
	}
	if unmapped := enc.Unmapped(); len(unmapped) > 0 {
		log.WithField("columns", unmapped).Warn("feature schema has columns no input produces; they will be encoded as 0")
	}
	return &Pipeline{
		encoder:    enc,
		scaler:     b.Scaler,
		classifier: b.Classifier,
		log:        log,
	}, nil
}

// Predict encodes, scales and scores one profile.
func (p *Pipeline) Predict(profile RawProfile) (PredictionResult, error) {
	log := p.log.WithField("request_id", uuid.New().String())

	rec, err := p.encoder.Encode(profile)
	if err != nil {
		log.WithError(err).Debug("profile rejected")
		return PredictionResult{}, err
	}
	if err := ScaleRecord(rec, p.scaler); err != nil {
		log.WithError(err).Error("scaling failed")
		return PredictionResult{}, err
	}
	res, err := Invoke(rec, p.classifier)
	if err != nil {
		log.WithError(err).Error("inference failed")
		return PredictionResult{}, err
	}

	log.WithFields(logrus.Fields{
		"label":       res.Label.String(),
		"probability": res.ChurnProbabilityPercent,
	}).Info("prediction complete")
	return res, nil
}

// Encoder returns the pipeline's encoder.
func (p *Pipeline) Encoder() *Encoder {
	return p.encoder
}

// Info summarizes the artifacts behind the pipeline.
func (p *Pipeline) Info() ModelInfo {
	unmapped := make(map[string]bool)
	for _, c := range p.encoder.Unmapped() {
		unmapped[c] = true
	}
	cols := p.encoder.Schema().Columns()
	info := ModelInfo{
		ClassifierKind: p.classifier.Kind(),
		ScalerKind:     p.scaler.Kind(),
		NumFeatures:    p.classifier.NumFeatures(),
		Columns:        make([]ColumnInfo, len(cols)),
	}
	for i, c := range cols {
		info.Columns[i] = ColumnInfo{Name: c, Mapped: !unmapped[c]}
	}
	return info
}
