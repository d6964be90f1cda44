package transform

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replacing(old, new string) Transformer {
	return func(ft FromTo) error {
		_, err := ft.To().Write(bytes.ReplaceAll(ft.From().Bytes(), []byte(old), []byte(new)))
		return err
	}
}

func TestChainApply(t *testing.T) {
	c := New(replacing("a", "b"), replacing("b", "c"))

	var out bytes.Buffer
	require.NoError(t, c.Apply(&out, strings.NewReader("abc")))
	assert.Equal(t, "ccc", out.String())
}

func TestChainEmpty(t *testing.T) {
	c := NewEmpty()

	var out bytes.Buffer
	require.NoError(t, c.Apply(&out, strings.NewReader("unchanged")))
	assert.Equal(t, "unchanged", out.String())
}

func TestChainError(t *testing.T) {
	boom := errors.New("boom")
	c := New(replacing("a", "b"), func(FromTo) error { return boom })

	var out bytes.Buffer
	assert.ErrorIs(t, c.Apply(&out, strings.NewReader("abc")), boom)
}
