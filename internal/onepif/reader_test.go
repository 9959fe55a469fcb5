package onepif

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// export собирает 1PIF поток из JSON объектов
func export(objects ...string) string {
	var sb strings.Builder
	for _, o := range objects {
		sb.WriteString(o)
		sb.WriteString("\n")
		sb.WriteString(Separator)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestReader_Next(t *testing.T) {
	stream := export(
		`{"typeName":"webforms.WebForm","title":"GitHub","uuid":"A1"}`,
		`{"typeName":"securenotes.SecureNote","title":"Note","uuid":"B2"}`,
	)
	r := NewReader(strings.NewReader(stream))

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "GitHub", first.Title)
	assert.Equal(t, "webforms.WebForm", first.TypeName)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Note", second.Title)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)

	// повторный вызов после конца тоже EOF
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_EmptyStreams(t *testing.T) {
	tests := []struct {
		name   string
		stream string
	}{
		{name: "empty", stream: ""},
		{name: "only newline", stream: "\n"},
		{name: "whitespace", stream: "  \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.stream))
			_, err := r.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestReader_TrailingWhitespaceChunkIsNotARecord(t *testing.T) {
	stream := export(`{"typeName":"passwords.Password","title":"p"}`) + "\n\n"
	r := NewReader(strings.NewReader(stream))

	var titles []string
	for rec, err := range r.All() {
		require.NoError(t, err)
		titles = append(titles, rec.Title)
	}
	assert.Equal(t, []string{"p"}, titles)
}

func TestReader_LastChunkWithoutSeparator(t *testing.T) {
	stream := export(`{"typeName":"passwords.Password","title":"a"}`) +
		`{"typeName":"passwords.Password","title":"b"}`
	r := NewReader(strings.NewReader(stream))

	var titles []string
	for rec, err := range r.All() {
		require.NoError(t, err)
		titles = append(titles, rec.Title)
	}
	assert.Equal(t, []string{"a", "b"}, titles)
}

func TestReader_MultilineObject(t *testing.T) {
	stream := "{\n  \"typeName\": \"passwords.Password\",\n  \"title\": \"multi\"\n}\n" + Separator + "\n"
	rec, err := NewReader(strings.NewReader(stream)).Next()
	require.NoError(t, err)
	assert.Equal(t, "multi", rec.Title)
}

func TestReader_MalformedChunk(t *testing.T) {
	stream := export(
		`{"typeName":"passwords.Password","title":"ok"}`,
		`{"typeName": broken`,
	)
	r := NewReader(strings.NewReader(stream))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "chunk 2")
}

func TestReader_AllStopsOnError(t *testing.T) {
	stream := export(
		`not json`,
		`{"typeName":"passwords.Password","title":"never"}`,
	)

	var errs []error
	count := 0
	for rec, err := range NewReader(strings.NewReader(stream)).All() {
		count++
		if err != nil {
			errs = append(errs, err)
			assert.Nil(t, rec)
		}
	}
	assert.Equal(t, 1, count)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrMalformedInput))
}

func TestReader_UnknownKindReportsRecord(t *testing.T) {
	stream := export(`{"typeName":"wallet.computer.License","title":"Office","uuid":"C3",
"secureContents":{"sections":[{"title":"","fields":[{"t":"seats","n":"seats","k":"number","v":5}]}]}}`)

	_, err := NewReader(strings.NewReader(stream)).Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFieldKind)
	assert.Contains(t, err.Error(), `"Office"`)
	assert.Contains(t, err.Error(), `"seats"`)
}
