// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/arxiv-mcp/internal/export"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// validate wraps the go-playground validator so that failures surface as
// InvalidParameter errors naming the JSON parameter.
type validate struct {
	v *validator.Validate
}

// tagComparisonField accepts the field names compare_papers can project.
const tagComparisonField = "comparison_field"

func newValidate() *validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation(tagComparisonField, func(fl validator.FieldLevel) bool {
		return export.IsComparisonField(fl.Field().String())
	})
	return &validate{v: v}
}

// Struct validates params and returns nil or an InvalidParameter error.
func (val *validate) Struct(params any) error {
	err := val.v.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return types.InvalidParameter("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return types.InvalidParameter("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s accepts at most %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case tagComparisonField:
		return fmt.Sprintf("%s must be one of %s, got %q", field, strings.Join(export.ComparisonFields, ", "), fe.Value())
	case "datetime":
		return fmt.Sprintf("%s must be a date as YYYY-MM-DD, got %q", field, fe.Value())
	}
	return fmt.Sprintf("%s is invalid", field)
}
