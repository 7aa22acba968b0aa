package field

import (
	"context"
	"strings"
	"sync"

	"cloudeng.io/logging/ctxlog"
)

// SupportedSectionTypes returns the section types a field editing values
// of type vt can hold.
func SupportedSectionTypes(vt ValueType) []SectionType {
	supported := []SectionType{TypeEmpty}
	if vt == ValueDate || vt == ValueDateTime {
		supported = append(supported, TypeWeekDay, TypeDay, TypeMonth, TypeYear)
	}
	if vt == ValueTime || vt == ValueDateTime {
		supported = append(supported, TypeHours, TypeMinutes, TypeSeconds, TypeMeridiem)
	}
	return supported
}

// Validator warns, once, about sections a value type cannot hold. The
// zero value is ready to use and safe for concurrent use.
type Validator struct {
	mu     sync.Mutex
	warned bool
}

// Warned reports whether the warning has already been logged.
func (v *Validator) Warned() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.warned
}

// Validate logs a warning to the context logger for the first section
// whose type is not supported by vt. Only the first warning of the
// Validator's lifetime is logged; it reports whether this call logged it.
func (v *Validator) Validate(ctx context.Context, sections []Section, vt ValueType) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.warned {
		return false
	}
	supported := SupportedSectionTypes(vt)
	for _, s := range sections {
		if containsType(supported, s.Type) {
			continue
		}
		names := make([]string, len(supported))
		for i, t := range supported {
			names[i] = string(t)
		}
		ctxlog.Logger(ctx).Warn("field: section type not supported by value type",
			"section", string(s.Type),
			"valueType", string(vt),
			"supported", strings.Join(names, ","))
		v.warned = true
		return true
	}
	return false
}

func containsType(types []SectionType, t SectionType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
