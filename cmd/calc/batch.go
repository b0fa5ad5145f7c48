package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// batch is a YAML file of expressions to evaluate:
//
//	max_len: 256
//	expressions:
//	  - name: area
//	    expr: 3.14159 * 2^2
type batch struct {
	MaxLen      int         `yaml:"max_len"`
	Expressions []batchExpr `yaml:"expressions"`
}

type batchExpr struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

func loadBatch(name string) (*batch, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parseBatch(data)
}

func parseBatch(data []byte) (*batch, error) {
	var b batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	if b.MaxLen < 0 {
		return nil, fmt.Errorf("max_len must not be negative, got %d", b.MaxLen)
	}
	for i, e := range b.Expressions {
		if e.Expr == "" {
			return nil, fmt.Errorf("expression %d (%q) is empty", i+1, e.Name)
		}
	}
	return &b, nil
}

func (b *batch) jobs() []job {
	jobs := make([]job, 0, len(b.Expressions))
	for _, e := range b.Expressions {
		jobs = append(jobs, job{name: e.Name, expr: e.Expr})
	}
	return jobs
}
