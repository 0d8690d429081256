// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package validation checks API request structs with go-playground/validator.
//
// Besides the built-in tags, a few domain tags are registered:
//
//	column        a known column name or alias ("weather", "Weather_Conditions")
//	numericcolumn a column with numeric values (casualties, vehicles, units, ...)
//	filtercolumn  one of the six sidebar filter columns
//	reducer       sum, first or average
//	date          a YYYY-MM-DD day
//	presetname    [A-Za-z0-9_-]{1,64}
//
// Field names in errors come from the `query` tag, then `json`, so messages
// name the parameter the client actually sent.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
	"github.com/tomtom215/roadlens/internal/presets"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError collects every failed rule of a request.
type RequestValidationError struct {
	Fields []FieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// Details is the error detail payload for API responses.
func (ve *RequestValidationError) Details() map[string]any {
	if len(ve.Fields) == 1 {
		f := ve.Fields[0]
		return map[string]any{"field": f.Field, "tag": f.Tag, "value": f.Value}
	}
	return map[string]any{"fields": ve.Fields}
}

// Field returns a single-field error for checks done outside struct tags.
func Field(field, tag string, value any, message string) *RequestValidationError {
	return &RequestValidationError{Fields: []FieldError{{Field: field, Tag: tag, Value: value, Message: message}}}
}

// GetValidator returns the shared validator.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(fieldName)
		mustRegister(v, "column", func(fl validator.FieldLevel) bool {
			_, ok := accidents.ParseColumn(fl.Field().String())
			return ok
		})
		mustRegister(v, "numericcolumn", func(fl validator.FieldLevel) bool {
			col, ok := accidents.ParseColumn(fl.Field().String())
			return ok && col.IsNumeric()
		})
		mustRegister(v, "filtercolumn", func(fl validator.FieldLevel) bool {
			col, ok := accidents.ParseColumn(fl.Field().String())
			return ok && col.IsFilter()
		})
		mustRegister(v, "reducer", func(fl validator.FieldLevel) bool {
			_, err := analytics.ParseReducer(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(accidents.DateLayout, fl.Field().String())
			return err == nil
		})
		mustRegister(v, "presetname", func(fl validator.FieldLevel) bool {
			return presets.ValidName(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ValidateStruct returns nil when s passes every rule.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Field("unknown", "unknown", nil, err.Error())
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{Fields: fields}
}

var messageTemplates = map[string]string{
	"required":      "%s is required",
	"column":        "%s must be a known column",
	"numericcolumn": "%s must be a numeric column",
	"filtercolumn":  "%s must be a filter column",
	"reducer":       "%s must be one of: sum, first, average",
	"date":          "%s must be a date in YYYY-MM-DD format",
	"presetname":    "%s must be 1-64 letters, digits, '-' or '_'",
}

var messageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	if tmpl, ok := messageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := messageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
