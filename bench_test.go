package main_test

import (
	"testing"

	"github.com/schattian/schlemiel/internal/schlemiel"
)

func BenchmarkInefficientConcat(b *testing.B) {
	var buf schlemiel.Buffer
	for i := 0; i < b.N; i++ {
		schlemiel.InefficientConcat(&buf, 1)
	}
}

func BenchmarkEfficientConcat(b *testing.B) {
	var buf schlemiel.Buffer
	for i := 0; i < b.N; i++ {
		schlemiel.EfficientConcat(&buf, 1)
	}
}
