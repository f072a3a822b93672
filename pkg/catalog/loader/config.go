// SPDX-License-Identifier: GPL-3.0-or-later

package loader

type (
	// File is the on-disk format of one catalog file.
	File struct {
		Metrics []MetricConfig `yaml:"metrics,omitempty" json:"metrics,omitempty"`
		Atoms   []AtomConfig   `yaml:"atoms,omitempty" json:"atoms,omitempty"`
	}
	MetricConfig struct {
		ID   string `yaml:"id" json:"id" jsonschema:"description=metric id in the form prefix.value_name"`
		Type string `yaml:"type" json:"type" jsonschema:"enum=counter,enum=histogram,enum=counter_with_uid,enum=histogram_with_uid"`
	}
	AtomConfig struct {
		Name        string             `yaml:"name" json:"name"`
		Code        int                `yaml:"code" json:"code" jsonschema:"minimum=1"`
		Message     string             `yaml:"message,omitempty" json:"message,omitempty"`
		Restricted  bool               `yaml:"restricted,omitempty" json:"restricted,omitempty"`
		Annotations []AnnotationConfig `yaml:"annotations,omitempty" json:"annotations,omitempty"`
		Fields      []FieldConfig      `yaml:"fields,omitempty" json:"fields,omitempty"`
	}
	FieldConfig struct {
		Index       int                `yaml:"index" json:"index" jsonschema:"minimum=1"`
		Name        string             `yaml:"name" json:"name"`
		Type        string             `yaml:"type" json:"type"`
		EnumValues  map[int]string     `yaml:"enum_values,omitempty" json:"enum_values,omitempty"`
		Annotations []AnnotationConfig `yaml:"annotations,omitempty" json:"annotations,omitempty"`
		Histogram   *HistogramConfig   `yaml:"histogram,omitempty" json:"histogram,omitempty"`
	}
	// AnnotationConfig carries exactly one of Int and Bool.
	AnnotationConfig struct {
		ID   string `yaml:"id" json:"id"`
		Int  *int   `yaml:"int,omitempty" json:"int,omitempty"`
		Bool *bool  `yaml:"bool,omitempty" json:"bool,omitempty"`
	}
	// HistogramConfig carries exactly one of Linear, Exponential and Explicit.
	HistogramConfig struct {
		Linear      *GeneratedBinsConfig `yaml:"linear,omitempty" json:"linear,omitempty"`
		Exponential *GeneratedBinsConfig `yaml:"exponential,omitempty" json:"exponential,omitempty"`
		Explicit    []float32            `yaml:"explicit,omitempty" json:"explicit,omitempty"`
	}
	GeneratedBinsConfig struct {
		Min   float32 `yaml:"min" json:"min"`
		Max   float32 `yaml:"max" json:"max"`
		Count int     `yaml:"count" json:"count" jsonschema:"minimum=1"`
	}
)
