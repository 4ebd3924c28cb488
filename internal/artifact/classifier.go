package artifact

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Classifier kinds understood by the loader.
const (
	KindLogisticRegression = "logistic_regression"
	KindTreeEnsemble       = "tree_ensemble"
)

// DefaultThreshold is the decision boundary used when a model artifact does
// not record one.
const DefaultThreshold = 0.5

// Classifier is a fitted binary classifier. Implementations are read-only
// after load and safe to share.
type Classifier interface {
	// PredictLabel returns the discrete class (0 or 1) for one row.
	PredictLabel(row []float64) (int, error)

	// PredictProbability returns the probability of the positive class.
	PredictProbability(row []float64) (float64, error)

	// NumFeatures returns the row width the model was trained on.
	NumFeatures() int

	// Kind returns the artifact kind, e.g. "logistic_regression".
	Kind() string

	// FeatureNames returns the column order the model was trained on, or
	// nil when the artifact does not record it.
	FeatureNames() []string
}

// featureNames is embedded by classifiers to carry their training columns.
type featureNames struct {
	names []string
}

func (f *featureNames) FeatureNames() []string {
	return slices.Clone(f.names)
}

// setFeatureNames records names, which must match the model width when given.
func (f *featureNames) setFeatureNames(names []string, width int) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) != width {
		return fmt.Errorf("%d feature names for a model of width %d", len(names), width)
	}
	f.names = slices.Clone(names)
	return nil
}

// CheckFeatureOrder fails with ErrColumnMismatch when the classifier records
// training columns that differ from the schema. Classifiers without names
// pass.
func CheckFeatureOrder(clf Classifier, schema Schema) error {
	names := clf.FeatureNames()
	if len(names) == 0 {
		return nil
	}
	cols := schema.Columns()
	for i := 0; i < max(len(names), len(cols)); i++ {
		switch {
		case i >= len(names):
			return fmt.Errorf("%w: schema column %d %q is not a model feature", ErrColumnMismatch, i, cols[i])
		case i >= len(cols):
			return fmt.Errorf("%w: model feature %d %q is not in the schema", ErrColumnMismatch, i, names[i])
		case names[i] != cols[i]:
			return fmt.Errorf("%w: position %d is %q in the model but %q in the schema", ErrColumnMismatch, i, names[i], cols[i])
		}
	}
	return nil
}

// LogisticRegression is a fitted binary logistic regression.
type LogisticRegression struct {
	featureNames
	coef      []float64
	intercept float64
	threshold float64
}

var _ Classifier = (*LogisticRegression)(nil)

// NewLogisticRegression creates a model from fitted coefficients. Callers
// without a fitted threshold pass DefaultThreshold.
func NewLogisticRegression(coef []float64, intercept, threshold float64) (*LogisticRegression, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("logistic regression needs at least one coefficient")
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0,1]", threshold)
	}
	for i, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	c := make([]float64, len(coef))
	copy(c, coef)
	return &LogisticRegression{coef: c, intercept: intercept, threshold: threshold}, nil
}

func (m *LogisticRegression) decision(row []float64) (float64, error) {
	if len(row) != len(m.coef) {
		return 0, shapeError("row", len(row), len(m.coef))
	}
	return floats.Dot(m.coef, row) + m.intercept, nil
}

// PredictProbability applies the logistic function to the decision value.
func (m *LogisticRegression) PredictProbability(row []float64) (float64, error) {
	z, err := m.decision(row)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// PredictLabel returns 1 when the positive-class probability exceeds the
// threshold.
func (m *LogisticRegression) PredictLabel(row []float64) (int, error) {
	p, err := m.PredictProbability(row)
	if err != nil {
		return 0, err
	}
	if p > m.threshold {
		return 1, nil
	}
	return 0, nil
}

func (m *LogisticRegression) NumFeatures() int { return len(m.coef) }

func (m *LogisticRegression) Kind() string { return KindLogisticRegression }

// TreeNode is one node of a fitted decision tree. Leaves have Left and Right
// set to -1 and carry per-class weights in Value.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n TreeNode) isLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is a single decision tree in pre-order layout: node 0 is the root and
// every child index is greater than its parent's.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeEnsemble averages class probabilities across trees, the way a random
// forest does.
type TreeEnsemble struct {
	featureNames
	trees       []Tree
	numFeatures int
}

var _ Classifier = (*TreeEnsemble)(nil)

// NewTreeEnsemble validates the tree layout and normalizes leaf weights into
// probabilities.
func NewTreeEnsemble(trees []Tree, numFeatures int) (*TreeEnsemble, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("tree ensemble has no trees")
	}
	if numFeatures <= 0 {
		return nil, fmt.Errorf("tree ensemble needs a positive feature count, got %d", numFeatures)
	}
	out := make([]Tree, len(trees))
	for ti, t := range trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		nodes := make([]TreeNode, len(t.Nodes))
		for ni, n := range t.Nodes {
			if n.isLeaf() {
				probs, err := normalizeLeaf(n.Value)
				if err != nil {
					return nil, fmt.Errorf("tree %d node %d: %w", ti, ni, err)
				}
				n.Value = probs
				nodes[ni] = n
				continue
			}
			if n.Left <= ni || n.Right <= ni || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("tree %d node %d: children (%d, %d) out of order or range", ti, ni, n.Left, n.Right)
			}
			if n.Feature < 0 || n.Feature >= numFeatures {
				return nil, fmt.Errorf("tree %d node %d: feature %d outside [0,%d)", ti, ni, n.Feature, numFeatures)
			}
			nodes[ni] = n
		}
		out[ti] = Tree{Nodes: nodes}
	}
	return &TreeEnsemble{trees: out, numFeatures: numFeatures}, nil
}

func normalizeLeaf(value []float64) ([]float64, error) {
	if len(value) != 2 {
		return nil, fmt.Errorf("leaf needs 2 class weights, got %d", len(value))
	}
	sum := floats.Sum(value)
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("leaf weights must sum to a positive finite value")
	}
	probs := make([]float64, 2)
	floats.ScaleTo(probs, 1/sum, value)
	return probs, nil
}

func (t Tree) leaf(row []float64) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (e *TreeEnsemble) classProbabilities(row []float64) ([]float64, error) {
	if len(row) != e.numFeatures {
		return nil, shapeError("row", len(row), e.numFeatures)
	}
	acc := make([]float64, 2)
	for _, t := range e.trees {
		floats.Add(acc, t.leaf(row))
	}
	floats.Scale(1/float64(len(e.trees)), acc)
	return acc, nil
}

// PredictProbability returns the averaged positive-class probability.
func (e *TreeEnsemble) PredictProbability(row []float64) (float64, error) {
	probs, err := e.classProbabilities(row)
	if err != nil {
		return 0, err
	}
	return probs[1], nil
}

// PredictLabel returns the class with the highest averaged probability; ties
// go to class 0.
func (e *TreeEnsemble) PredictLabel(row []float64) (int, error) {
	probs, err := e.classProbabilities(row)
	if err != nil {
		return 0, err
	}
	if probs[1] > probs[0] {
		return 1, nil
	}
	return 0, nil
}

func (e *TreeEnsemble) NumFeatures() int { return e.numFeatures }

func (e *TreeEnsemble) Kind() string { return KindTreeEnsemble }
