package validation

import (
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func textValidator(kind Kind, fails func(string) bool) Validator[string] {
	return func(v Value[string]) Value[string] {
		if inner := v.Inner(); inner != nil && fails(*inner) {
			v.Push(kind)
		}
		return v
	}
}

// MaxText fails with MaxTextLength(limit) when the text is longer than
// limit characters. Limits count Unicode code points, not bytes — Slack
// documents its length limits in characters. A text of exactly limit
// characters passes.
func MaxText(limit int) Validator[string] {
	return textValidator(MaxTextLength(limit), func(s string) bool {
		return utf8.RuneCountInString(s) > limit
	})
}

// MinText fails with MinTextLength(limit) when the text is shorter than
// limit characters.
func MinText(limit int) Validator[string] {
	return textValidator(MinTextLength(limit), func(s string) bool {
		return utf8.RuneCountInString(s) < limit
	})
}

// DateFormat fails unless the text is a real calendar date written as
// YYYY-MM-DD (so "2015-02-29" is rejected, not just malformed strings).
func DateFormat() Validator[string] {
	return textValidator(InvalidFormat("YYYY-MM-DD"), func(s string) bool {
		if !datePattern.MatchString(s) {
			return true
		}
		_, err := time.Parse("2006-01-02", s)
		return err != nil
	})
}

// TimeFormat fails unless the text is a valid 24-hour HH:mm time.
func TimeFormat() Validator[string] {
	return textValidator(InvalidFormat("24-hour format HH:mm"), func(s string) bool {
		if !timePattern.MatchString(s) {
			return true
		}
		_, err := time.Parse("15:04", s)
		return err != nil
	})
}
