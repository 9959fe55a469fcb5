package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_SetCustomProperty(t *testing.T) {
	e := &Entry{}
	e.SetCustomProperty("a", "1", false)
	e.SetCustomProperty("b", "2", true)
	e.SetCustomProperty("a", "3", true)

	require.Len(t, e.CustomProperties, 2)
	assert.Equal(t, CustomProperty{Name: "a", Value: "3", Protected: true}, e.CustomProperties[0])
	assert.Equal(t, CustomProperty{Name: "b", Value: "2", Protected: true}, e.CustomProperties[1])
}

func TestEntry_CustomProperty(t *testing.T) {
	e := &Entry{}
	e.SetCustomProperty("KP2A_URL", "https://b.example/", false)

	p, ok := e.CustomProperty("KP2A_URL")
	require.True(t, ok)
	assert.Equal(t, "https://b.example/", p.Value)

	_, ok = e.CustomProperty("missing")
	assert.False(t, ok)
}

func TestEntry_AddURL(t *testing.T) {
	e := &Entry{}
	e.AddURL("https://a.example/")
	e.AddURL("https://b.example/")

	assert.Equal(t, "https://a.example/", e.URL)
	assert.Equal(t, []string{"https://a.example/", "https://b.example/"}, e.URLs)
}
