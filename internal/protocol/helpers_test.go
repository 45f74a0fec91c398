package protocol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// parseJSON parses a body the way Decode does, numbers as json.Number.
func parseJSON(t *testing.T, s string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

// assertStatus fails unless err is a protocol Error of the given kind.
func assertStatus(t *testing.T, err error, status ErrorStatus) *Error {
	t.Helper()

	var wdErr *Error
	require.ErrorAs(t, err, &wdErr)
	require.Equal(t, status, wdErr.Status)
	return wdErr
}
