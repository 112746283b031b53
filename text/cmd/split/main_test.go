package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name string
		opts options
		line string
		want string
	}{
		{"split", options{sep: ","}, "a,b,,c", "a\tb\t\tc"},
		{"fold", options{sep: "x", fold: true}, "1X2x3", "1\t2\t3"},
		{"words", options{words: true}, "one, two", "one\ttwo"},
		{"json", options{sep: ",", json: true}, "a,b", `{"input":"a,b","pieces":["a","b"]}`},
		{"json empty", options{sep: ",", json: true}, "", `{"input":"","pieces":[]}`},
		{"field", options{sep: " ", field: "msg.text"}, `{"msg":{"text":"hi there"}}`, "hi\tthere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := process(tt.opts, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessErrors(t *testing.T) {
	_, err := process(options{field: "a"}, "not json")
	assert.Error(t, err)

	_, err = process(options{field: "b"}, `{"a":1}`)
	assert.ErrorIs(t, err, errNoField)
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emit(&buf, options{sep: ";", json: true}, "x;y"))

	pieces := gjson.Get(buf.String(), "pieces").Array()
	require.Len(t, pieces, 2)
	assert.Equal(t, "y", pieces[1].String())
}
