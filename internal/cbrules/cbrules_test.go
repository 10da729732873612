package cbrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleText(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{rule: NegativeIndex(), want: "CB001: NegativeIndex"},
		{rule: NegativeSliceBound(), want: "CB002: NegativeSliceBound"},
		{rule: DivisionByZero(), want: "CB010: DivisionByZero"},
		{rule: AnalysisFailure(), want: "CB900: AnalysisFailure"},
		{rule: ruleInvalid, want: "rule-unknown(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.String())
			assert.NotEmpty(t, tt.rule.Description())
		})
	}
}

func TestParse(t *testing.T) {
	for _, r := range All() {
		got, err := Parse(r.Code())
		require.NoError(t, err)
		assert.Equal(t, r, got)

		got, err = Parse(" " + r.Name() + " ")
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := Parse("cb010")
	require.NoError(t, err)
	assert.Equal(t, DivisionByZero(), got)

	_, err = Parse("CB999")
	require.Error(t, err)
}

func TestText(t *testing.T) {
	var r Rule
	require.NoError(t, r.UnmarshalText([]byte("NegativeSliceBound")))
	assert.Equal(t, CB002NegativeSliceBound, r)

	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "CB002", string(text))

	_, err = ruleInvalid.MarshalText()
	require.Error(t, err)
	require.Error(t, r.UnmarshalText([]byte("nope")))
}
