package enums

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"unsupported",
			&Error{Code: ErrCodeUnsupportedUnderlyingType, Type: "Wide", Detail: "underlying type int"},
			"[UNSUPPORTED_UNDERLYING_TYPE] type Wide has an unsupported underlying type: underlying type int",
		},
		{
			"not defined",
			&Error{Code: ErrCodeValueNotDefined, Type: "Sparse", Value: "3"},
			"[VALUE_NOT_DEFINED] value 3 is not defined in Sparse",
		},
		{
			"format",
			&Error{Code: ErrCodeFormat, Type: "Color", Value: "Purple"},
			`[FORMAT_ERROR] "Purple" does not name a member of Color`,
		},
		{
			"ambiguous",
			&Error{Code: ErrCodeAmbiguousMatch, Type: "Alias", Value: "1", Detail: "A, B"},
			`[AMBIGUOUS_MATCH] "1" matches more than one member of Alias (case-sensitive): A, B`,
		},
		{
			"invalid argument",
			&Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"},
			"[INVALID_ARGUMENT] invalid argument: nil metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsMatchesCode(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Code: ErrCodeFormat, Type: "Color", Value: "x", Cause: cause}

	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAmbiguousMatch)
	assert.Contains(t, err.Error(), ": boom")
}
