package valx_test

import (
	"testing"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
)

type sample struct {
	Name string `validate:"required"`
	Age  int    `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	if err := valx.Struct(sample{Name: "kim"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := valx.Struct(sample{Age: -1})
	if !errx.IsCode(err, valx.CodeInvalidRequest) {
		t.Fatalf("err = %v, want %s", err, valx.CodeInvalidRequest)
	}

	fields, _ := err.(*errx.Error).Details["fields"].([]string)
	if len(fields) != 2 {
		t.Errorf("fields = %v, want two entries", fields)
	}
}
