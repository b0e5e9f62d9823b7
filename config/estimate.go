package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// Estimate is the interactive starting tensor, given either as principal
// axis readings (degrees) or as a full symmetric matrix.
type Estimate struct {
	TrendS1      float64 `yaml:"trendS1"`
	PlungeS1     float64 `yaml:"plungeS1"`
	TrendS3      float64 `yaml:"trendS3"`
	PlungeS3     float64 `yaml:"plungeS3"`
	MasterStress string  `yaml:"masterStress"`
	StressRatio  float64 `yaml:"stressRatio"`

	// Tensor, when set, overrides every other field.
	Tensor *[3][3]float64 `yaml:"tensor,omitempty"`
}

// DefaultEstimate is σ1 horizontal North, σ3 horizontal East, R = 0.5.
func DefaultEstimate() Estimate {
	return Estimate{TrendS3: 90, MasterStress: "Sigma1", StressRatio: 0.5}
}

// Resolve returns the principal rotation (rows S1, S3, S2) and the stress
// ratio of the estimate.
func (e Estimate) Resolve() (tensor.Matrix3, float64, error) {
	if e.Tensor != nil {
		st, err := geomeca.FromTensor(tensor.Matrix3(*e.Tensor))
		if err != nil {
			return tensor.Matrix3{}, 0, fmt.Errorf("%w: estimate tensor: %w", ErrInvalidConfig, err)
		}
		r := st.R()
		if math.IsNaN(r) {
			return tensor.Matrix3{}, 0, fmt.Errorf("%w: estimate tensor is isotropic", ErrInvalidConfig)
		}
		return st.Hrot, r, nil
	}

	master, err := parseMaster(e.MasterStress)
	if err != nil {
		return tensor.Matrix3{}, 0, err
	}
	if !(e.StressRatio >= 0 && e.StressRatio <= 1) {
		return tensor.Matrix3{}, 0, fmt.Errorf("%w: stressRatio %v outside [0, 1]", ErrInvalidConfig, e.StressRatio)
	}
	rot := geomeca.RotationFromAxes(
		tensor.Rad(e.TrendS1), tensor.Rad(e.PlungeS1),
		tensor.Rad(e.TrendS3), tensor.Rad(e.PlungeS3),
		master,
	)
	return rot, e.StressRatio, nil
}

func parseMaster(s string) (geomeca.MasterAxis, error) {
	switch normalize(s) {
	case "", "sigma1", "s1":
		return geomeca.MasterSigma1, nil
	case "sigma3", "s3":
		return geomeca.MasterSigma3, nil
	}
	return 0, fmt.Errorf("%w: masterStress %q", ErrInvalidConfig, s)
}

// normalize lower-cases s and drops spaces, '-' and '_'.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}
