package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Default artifact file names inside an artifact directory.
const (
	DefaultModelFile   = "model.json"
	DefaultScalerFile  = "scaler.json"
	DefaultColumnsFile = "columns.json"
)

// Paths locates the three artifact files.
type Paths struct {
	Model   string
	Scaler  string
	Columns string
}

// PathsIn returns the default file locations inside dir.
func PathsIn(dir string) Paths {
	return Paths{
		Model:   filepath.Join(dir, DefaultModelFile),
		Scaler:  filepath.Join(dir, DefaultScalerFile),
		Columns: filepath.Join(dir, DefaultColumnsFile),
	}
}

// Bundle holds the loaded artifacts. It is read-only after Load returns.
type Bundle struct {
	Classifier Classifier
	Scaler     Scaler
	Schema     Schema
	Paths      Paths
}

type modelFile struct {
	FormatVersion string    `json:"format_version"`
	Kind          string    `json:"kind"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`
	Threshold     *float64  `json:"threshold"`
	FeatureNames  []string  `json:"feature_names"`
	NumFeatures   int       `json:"n_features"`
	Trees         []Tree    `json:"trees"`
}

type scalerFile struct {
	FormatVersion string    `json:"format_version"`
	Kind          string    `json:"kind"`
	FeatureNames  []string  `json:"feature_names"`
	Mean          []float64 `json:"mean"`
	Min           []float64 `json:"min"`
	Scale         []float64 `json:"scale"`
}

type columnsFile struct {
	FormatVersion string   `json:"format_version"`
	Columns       []string `json:"columns"`
}

// Load reads and validates all three artifacts. Any failure is returned as a
// *LoadError naming the offending file. A nil log discards output.
func Load(paths Paths, log logrus.FieldLogger) (*Bundle, error) {
	if log == nil {
		log = discardLogger()
	}
	schema, err := LoadSchema(paths.Columns)
	if err != nil {
		return nil, err
	}
	scaler, err := LoadScaler(paths.Scaler)
	if err != nil {
		return nil, err
	}
	clf, err := LoadClassifier(paths.Model)
	if err != nil {
		return nil, err
	}

	if err := CheckFeatureOrder(clf, schema); err != nil {
		return nil, &LoadError{Path: paths.Model, Err: err}
	}
	if clf.NumFeatures() != schema.Len() {
		log.WithFields(logrus.Fields{
			"model_features":  clf.NumFeatures(),
			"schema_features": schema.Len(),
		}).Warn("classifier width differs from feature schema; every prediction will fail")
	}

	log.WithFields(logrus.Fields{
		"classifier": clf.Kind(),
		"scaler":     scaler.Kind(),
		"columns":    schema.Len(),
	}).Info("artifacts loaded")

	return &Bundle{
		Classifier: clf,
		Scaler:     scaler,
		Schema:     schema,
		Paths:      paths,
	}, nil
}

// LoadClassifier reads a model artifact.
func LoadClassifier(path string) (Classifier, error) {
	var mf modelFile
	if err := readDocument(path, "model", &mf); err != nil {
		return nil, err
	}
	if err := checkFormatVersion(mf.FormatVersion); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var (
		clf Classifier
		err error
	)
	switch mf.Kind {
	case KindLogisticRegression:
		threshold := DefaultThreshold
		if mf.Threshold != nil {
			threshold = *mf.Threshold
		}
		var lr *LogisticRegression
		if lr, err = NewLogisticRegression(mf.Coefficients, mf.Intercept, threshold); err == nil {
			err = lr.setFeatureNames(mf.FeatureNames, lr.NumFeatures())
		}
		clf = lr
	case KindTreeEnsemble:
		var te *TreeEnsemble
		if te, err = NewTreeEnsemble(mf.Trees, mf.NumFeatures); err == nil {
			err = te.setFeatureNames(mf.FeatureNames, te.NumFeatures())
		}
		clf = te
	default:
		err = fmt.Errorf("unknown classifier kind %q", mf.Kind)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return clf, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// LoadScaler reads a scaler artifact.
func LoadScaler(path string) (Scaler, error) {
	var sf scalerFile
	if err := readDocument(path, "scaler", &sf); err != nil {
		return nil, err
	}
	if err := checkFormatVersion(sf.FormatVersion); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var (
		s   Scaler
		err error
	)
	switch sf.Kind {
	case KindStandardScaler:
		s, err = NewStandardScaler(sf.FeatureNames, sf.Mean, sf.Scale)
	case KindMinMaxScaler:
		s, err = NewMinMaxScaler(sf.FeatureNames, sf.Min, sf.Scale)
	default:
		err = fmt.Errorf("unknown scaler kind %q", sf.Kind)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return s, nil
}

// LoadSchema reads the ordered feature-column list.
func LoadSchema(path string) (Schema, error) {
	var cf columnsFile
	if err := readDocument(path, "columns", &cf); err != nil {
		return Schema{}, err
	}
	if err := checkFormatVersion(cf.FormatVersion); err != nil {
		return Schema{}, &LoadError{Path: path, Err: err}
	}
	s, err := NewSchema(cf.Columns)
	if err != nil {
		return Schema{}, &LoadError{Path: path, Err: err}
	}
	return s, nil
}

// readDocument reads path, validates it against the named schema and decodes
// it into dst.
func readDocument(path, schemaName string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if _, err := validateDocument(schemaName, raw); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
