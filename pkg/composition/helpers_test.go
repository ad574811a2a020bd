package composition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func plainText(t *testing.T, text string) Text {
	t.Helper()
	built, err := NewPlainTextBuilder().Text(text).Build()
	require.NoError(t, err)
	return *built
}

func option(t *testing.T, text, value string) Opt {
	t.Helper()
	built, err := NewOptBuilder().
		Text(plainText(t, text)).
		Value(value).
		Build()
	require.NoError(t, err)
	return *built
}
