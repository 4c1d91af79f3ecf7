// Package limits implements the shared ResourceLimits configuration
// (spec §4.7): read-only after construction, safely shared across
// concurrent renders (spec §5).
package limits

import (
	"fmt"
	"time"
)

// ResourceLimits bounds every resource-consuming dimension of a render.
// All setters reject values ≤0 (spec §4.7).
type ResourceLimits struct {
	maxTemplateFileSize         int64
	maxDataFileSize             int64
	maxPreprocessorNestingDepth int
	maxPreprocessorInputSize    int64
	maxTemplateNestingDepth     int
	maxRenderDepth              int
	maxImageSize                int64
	httpTimeout                 time.Duration
	maxFlexLines                int
}

// Default returns spec §4.7's documented defaults.
func Default() ResourceLimits {
	return ResourceLimits{
		maxTemplateFileSize:         1 << 20,  // 1MB
		maxDataFileSize:             10 << 20, // 10MB
		maxPreprocessorNestingDepth: 50,
		maxPreprocessorInputSize:    1 << 20, // 1MB
		maxTemplateNestingDepth:     100,
		maxRenderDepth:              100,
		maxImageSize:                10 << 20, // 10MB
		httpTimeout:                 30 * time.Second,
		maxFlexLines:                1000,
	}
}

func (r ResourceLimits) MaxTemplateFileSize() int64         { return r.maxTemplateFileSize }
func (r ResourceLimits) MaxDataFileSize() int64              { return r.maxDataFileSize }
func (r ResourceLimits) MaxPreprocessorNestingDepth() int    { return r.maxPreprocessorNestingDepth }
func (r ResourceLimits) MaxPreprocessorInputSize() int64     { return r.maxPreprocessorInputSize }
func (r ResourceLimits) MaxTemplateNestingDepth() int        { return r.maxTemplateNestingDepth }
func (r ResourceLimits) MaxRenderDepth() int                 { return r.maxRenderDepth }
func (r ResourceLimits) MaxImageSize() int64                 { return r.maxImageSize }
func (r ResourceLimits) HttpTimeout() time.Duration          { return r.httpTimeout }
func (r ResourceLimits) MaxFlexLines() int                   { return r.maxFlexLines }

func errNonPositive(name string) error {
	return fmt.Errorf("limits: %s must be > 0", name)
}

func (r *ResourceLimits) SetMaxTemplateFileSize(v int64) error {
	if v <= 0 {
		return errNonPositive("MaxTemplateFileSize")
	}
	r.maxTemplateFileSize = v
	return nil
}

func (r *ResourceLimits) SetMaxDataFileSize(v int64) error {
	if v <= 0 {
		return errNonPositive("MaxDataFileSize")
	}
	r.maxDataFileSize = v
	return nil
}

func (r *ResourceLimits) SetMaxPreprocessorNestingDepth(v int) error {
	if v <= 0 {
		return errNonPositive("MaxPreprocessorNestingDepth")
	}
	r.maxPreprocessorNestingDepth = v
	return nil
}

func (r *ResourceLimits) SetMaxPreprocessorInputSize(v int64) error {
	if v <= 0 {
		return errNonPositive("MaxPreprocessorInputSize")
	}
	r.maxPreprocessorInputSize = v
	return nil
}

func (r *ResourceLimits) SetMaxTemplateNestingDepth(v int) error {
	if v <= 0 {
		return errNonPositive("MaxTemplateNestingDepth")
	}
	r.maxTemplateNestingDepth = v
	return nil
}

func (r *ResourceLimits) SetMaxRenderDepth(v int) error {
	if v <= 0 {
		return errNonPositive("MaxRenderDepth")
	}
	r.maxRenderDepth = v
	return nil
}

func (r *ResourceLimits) SetMaxImageSize(v int64) error {
	if v <= 0 {
		return errNonPositive("MaxImageSize")
	}
	r.maxImageSize = v
	return nil
}

func (r *ResourceLimits) SetHttpTimeout(v time.Duration) error {
	if v <= 0 {
		return errNonPositive("HttpTimeout")
	}
	r.httpTimeout = v
	return nil
}

func (r *ResourceLimits) SetMaxFlexLines(v int) error {
	if v <= 0 {
		return errNonPositive("MaxFlexLines")
	}
	r.maxFlexLines = v
	return nil
}
