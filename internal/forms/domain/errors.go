package domain

import "errors"

var (
	ErrIndexOutOfRange   = errors.New("field index out of range")
	ErrUnknownFieldType  = errors.New("unknown field type")
	ErrEmptyLabel        = errors.New("field label is required")
	ErrUnknownRuleType   = errors.New("unknown validation rule type")
	ErrMissingRuleValue  = errors.New("validation rule value is required")
	ErrDuplicateFieldID  = errors.New("field id already present in schema")
	ErrDerivedSelfParent = errors.New("derived field cannot depend on itself")
)
