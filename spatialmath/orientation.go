package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OrientationType defines what orientation representations are known.
type OrientationType string

// The set of allowed representations for orientation.
const (
	NoOrientationType = OrientationType("")
	IdentityType      = OrientationType("identity")
	QuaternionType    = OrientationType("quaternion")
	AxisAnglesType    = OrientationType("axis_angles")
	EulerAnglesType   = OrientationType("euler_angles")
)

// OrientationConfig holds the underlying type of orientation, and the value.
type OrientationConfig struct {
	Type  OrientationType `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// NewOrientationConfig encodes q as a quaternion orientation config.
func NewOrientationConfig(q Quaternion) (*OrientationConfig, error) {
	bytes, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return &OrientationConfig{Type: QuaternionType, Value: json.RawMessage(bytes)}, nil
}

// ParseConfig converts an OrientationConfig into a rotation. A nil or typeless config is the identity.
func (config *OrientationConfig) ParseConfig() (Quaternion, error) {
	if config == nil {
		return NewZeroQuaternion(), nil
	}
	switch config.Type {
	case NoOrientationType, IdentityType:
		return NewZeroQuaternion(), nil
	case QuaternionType:
		var q Quaternion
		if err := json.Unmarshal(config.Value, &q); err != nil {
			return Quaternion{}, err
		}
		if q.Norm() == 0 {
			return Quaternion{}, errors.New("quaternion orientation must be non-zero")
		}
		return q, nil
	case AxisAnglesType:
		var aa R4AA
		if err := json.Unmarshal(config.Value, &aa); err != nil {
			return Quaternion{}, err
		}
		return aa.Quaternion()
	case EulerAnglesType:
		var ea EulerAngles
		if err := json.Unmarshal(config.Value, &ea); err != nil {
			return Quaternion{}, err
		}
		return ea.Quaternion(), nil
	default:
		return Quaternion{}, newOrientationTypeUnsupportedError(config.Type)
	}
}

// Validate checks the type is known without decoding the value.
func (config *OrientationConfig) Validate() error {
	if config == nil {
		return nil
	}
	switch config.Type {
	case NoOrientationType, IdentityType, QuaternionType, AxisAnglesType, EulerAnglesType:
		return nil
	default:
		return newOrientationTypeUnsupportedError(config.Type)
	}
}

func newOrientationTypeUnsupportedError(orientationType OrientationType) error {
	return errors.Errorf("orientation type %s not recognized", orientationType)
}

// TranslationConfig is the translation between two frames.
type TranslationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewTranslationConfig creates a TranslationConfig from a point.
func NewTranslationConfig(p Point) *TranslationConfig {
	return &TranslationConfig{X: p.X, Y: p.Y, Z: p.Z}
}

// ParseConfig converts a TranslationConfig into a point.
func (config *TranslationConfig) ParseConfig() Point {
	return Point{config.X, config.Y, config.Z}
}
