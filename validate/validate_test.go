package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelcal/validate"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		valid  bool
		reason validate.Reason
	}{
		{"hello world", "HELLO WORLD", true, validate.ReasonNone},
		{"lower case upper-cases", "hello, world!", true, validate.ReasonNone},
		{"punctuation", "1+1=2 (OK?) -.:", true, validate.ReasonNone},
		{"exactly thirty", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123", true, validate.ReasonNone},
		{"too long", "TOO LONG MESSAGE THAT EXCEEDS THE THIRTY CHARACTER LIMIT", false, validate.ReasonTooLong},
		{"charset", "SPECIAL @#$%", false, validate.ReasonCharset},
		{"empty", "", false, validate.ReasonEmpty},
		{"malformed", "A\xffB", false, validate.ReasonMalformed},
		{"emoji", "HI 🚀", false, validate.ReasonCharset},
		{"long before charset", "@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@", false, validate.ReasonTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validate.Validate(tc.in)
			require.Equal(t, tc.valid, res.Valid)
			require.Equal(t, tc.reason, res.Reason)
		})
	}
}

func TestValidate_CountsRunesNotBytes(t *testing.T) {
	// "é" is two bytes; a byte count would report too_long.
	v := validate.New(validate.WithMaxLength(1))
	res := v.Validate("é")
	require.Equal(t, 1, res.Length)
	require.Equal(t, validate.ReasonCharset, res.Reason)
}

func TestValidate_InvalidRunes(t *testing.T) {
	res := validate.Validate("A@B@C#")
	require.Equal(t, []rune{'@', '#'}, res.Invalid)
}

func TestValidator_MinLength(t *testing.T) {
	v := validate.New(validate.WithMinLength(3), validate.WithMaxLength(5))
	require.Equal(t, validate.ReasonTooShort, v.Validate("AB").Reason)
	require.True(t, v.Validate("ABC").Valid)
	require.Equal(t, validate.ReasonTooLong, v.Validate("ABCDEF").Reason)
	require.Equal(t, 3, v.MinLength())
	require.Equal(t, 5, v.MaxLength())
}

func TestValidator_Panics(t *testing.T) {
	require.Panics(t, func() { validate.WithMaxLength(0) })
	require.Panics(t, func() { validate.WithMinLength(0) })
	require.Panics(t, func() { validate.New(validate.WithMinLength(10), validate.WithMaxLength(5)) })
}

func TestResult_Err(t *testing.T) {
	require.NoError(t, validate.Validate("OK").Err())

	sentinels := map[string]error{
		"":                                    validate.ErrEmpty,
		"\xc3":                                validate.ErrMalformed,
		"THIS MESSAGE IS FAR TOO LONG TO FIT": validate.ErrTooLong,
		"NO_UNDERSCORES":                      validate.ErrCharset,
	}
	for in, want := range sentinels {
		err := validate.Validate(in).Err()
		require.ErrorIs(t, err, want, "input %q", in)

		var ve *validate.ValidationError
		require.True(t, errors.As(err, &ve))
		require.False(t, ve.Result.Valid)
	}

	err := validate.New(validate.WithMinLength(4)).Validate("AB").Err()
	require.ErrorIs(t, err, validate.ErrTooShort)
	require.Contains(t, err.Error(), "2 characters")
}

func TestReason_String(t *testing.T) {
	require.Equal(t, "too_long", validate.ReasonTooLong.String())
	require.Equal(t, "charset", validate.ReasonCharset.String())
	require.Equal(t, "Reason(42)", validate.Reason(42).String())
}
