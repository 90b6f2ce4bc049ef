package ca

import (
	"errors"

	"github.com/tjburns08/Conv-CA/pkg/core"
)

// ErrInvalidKernel reports a kernel whose side is even or non-positive.
// Kernels must have an odd side so the convolution window has a center.
var ErrInvalidKernel = errors.New("kernel side must be odd and positive")

// ErrInvalidDimensions reports a grid that is not strictly larger than the
// kernel, leaving no interior to convolve.
var ErrInvalidDimensions = errors.New("grid side must exceed kernel side")

// ErrInvalidDistribution is propagated unchanged from the sampling layer.
var ErrInvalidDistribution = core.ErrInvalidDistribution
