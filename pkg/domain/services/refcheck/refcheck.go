// Package refcheck validates sizing reference data before it is handed to
// a sizing strategy.
package refcheck

import (
	"fmt"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

// ValidationResult contains the results of reference data validation
type ValidationResult struct {
	DuplicateOptions []string
	UnknownOptions   []entities.MaterialOptionID
	UnsizedOptions   []entities.MaterialOptionID
	Errors           []string
	Warnings         []string
}

// Valid reports whether validation found no errors
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Merge appends the findings of other to r
func (r *ValidationResult) Merge(other *ValidationResult) {
	r.DuplicateOptions = append(r.DuplicateOptions, other.DuplicateOptions...)
	r.UnknownOptions = append(r.UnknownOptions, other.UnknownOptions...)
	r.UnsizedOptions = append(r.UnsizedOptions, other.UnsizedOptions...)
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func newResult() *ValidationResult {
	return &ValidationResult{
		DuplicateOptions: make([]string, 0),
		UnknownOptions:   make([]entities.MaterialOptionID, 0),
		UnsizedOptions:   make([]entities.MaterialOptionID, 0),
		Errors:           make([]string, 0),
		Warnings:         make([]string, 0),
	}
}

// ValidateMaterialOptions checks paper options for duplicate ids and
// incomplete or unconvertible size properties
func ValidateMaterialOptions(options []*entities.MaterialOption) *ValidationResult {
	result := newResult()
	seen := make(map[entities.MaterialOptionID]bool, len(options))

	for _, option := range options {
		if seen[option.ID] {
			result.DuplicateOptions = append(result.DuplicateOptions, string(option.ID))
			continue
		}
		seen[option.ID] = true

		props := option.Properties
		if props.WidthValue == nil || props.LengthValue == nil || props.SizeUOM == "" {
			result.UnsizedOptions = append(result.UnsizedOptions, option.ID)
			continue
		}
		if measure, ok := entities.MeasureOf(props.SizeUOM); !ok || measure != entities.Distance {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Material option %s has non-distance size unit %q", option.ID, props.SizeUOM))
		}
	}

	if len(result.DuplicateOptions) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Duplicate material options found: %v", result.DuplicateOptions))
	}
	if len(result.UnsizedOptions) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Material options without complete size properties: %v", result.UnsizedOptions))
	}

	return result
}

// ValidateMachineOptions checks machines for usable units and for bounds
// whose minimum exceeds the maximum after the fallback chain is applied
func ValidateMachineOptions(options []*entities.MachineOption) *ValidationResult {
	result := newResult()
	seen := make(map[entities.MachineOptionID]bool, len(options))

	for _, option := range options {
		if seen[option.ID] {
			result.DuplicateOptions = append(result.DuplicateOptions, string(option.ID))
			continue
		}
		seen[option.ID] = true

		machine := option.Machine
		if machine == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Machine option %s has no machine", option.ID))
			continue
		}
		if measure, ok := entities.MeasureOf(machine.UOM); !ok || measure != entities.Distance {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Machine %s has invalid unit of measure %q", machine.ID, machine.UOM))
			continue
		}

		checkRange(result, machine.ID, "width",
			populated(machine.MinPrintableWidth, machine.MinSheetWidth),
			populated(machine.MaxPrintableWidth, machine.MaxSheetWidth))
		checkRange(result, machine.ID, "length",
			populated(machine.MinSheetLength, machine.MinSheetBreakpointLength),
			populated(machine.MaxSheetLength, machine.MaxSheetBreakpointLength))
	}

	if len(result.DuplicateOptions) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Duplicate machine options found: %v", result.DuplicateOptions))
	}

	return result
}

// ValidateTemplateReferences checks that every template references a known
// material option
func ValidateTemplateReferences(templates []entities.MaterialTemplate, options []*entities.MaterialOption) *ValidationResult {
	result := newResult()

	known := make(map[entities.MaterialOptionID]bool, len(options))
	for _, option := range options {
		known[option.ID] = true
	}

	reported := make(map[entities.MaterialOptionID]bool)
	for _, template := range templates {
		id := template.MaterialOptionID
		if !known[id] && !reported[id] {
			reported[id] = true
			result.UnknownOptions = append(result.UnknownOptions, id)
		}
	}

	if len(result.UnknownOptions) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Material templates reference unknown options: %v", result.UnknownOptions))
	}

	return result
}

func checkRange(result *ValidationResult, machineID, axis string, minimum, maximum *float64) {
	if minimum == nil || maximum == nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Machine %s has no %s bounds", machineID, axis))
		return
	}
	if *minimum > *maximum {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Machine %s minimum %s %g exceeds maximum %g", machineID, axis, *minimum, *maximum))
	}
}

// populated follows the machine fallback chain: zero bounds are skipped
// unless every set bound is zero.
func populated(values ...*float64) *float64 {
	var zero *float64
	for _, v := range values {
		if v == nil {
			continue
		}
		if *v != 0 {
			return v
		}
		zero = v
	}
	return zero
}
