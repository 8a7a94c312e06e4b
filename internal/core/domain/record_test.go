package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Valid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{
			name: "complete record",
			record: Record{
				Character:  "本",
				Code:       "50230",
				Definition: "root; origin",
				Pinyin:     "ben3",
				Cantonese:  "bun2",
			},
			want: true,
		},
		{
			name: "missing cantonese is still valid",
			record: Record{
				Character:  "木",
				Code:       "4090",
				Definition: "tree; wood",
				Pinyin:     "mu4",
			},
			want: true,
		},
		{
			name: "code outside detection length is still valid",
			record: Record{
				Character:  "一",
				Code:       "1",
				Definition: "one",
				Pinyin:     "yi1",
			},
			want: true,
		},
		{
			name: "missing character",
			record: Record{
				Code:       "1022",
				Definition: "root",
				Pinyin:     "ben3",
			},
			want: false,
		},
		{
			name: "missing definition",
			record: Record{
				Character: "本",
				Code:      "1022",
				Pinyin:    "ben3",
			},
			want: false,
		},
		{
			name: "missing pinyin",
			record: Record{
				Character:  "本",
				Code:       "1022",
				Definition: "root",
			},
			want: false,
		},
		{
			name: "empty code",
			record: Record{
				Character:  "本",
				Definition: "root",
				Pinyin:     "ben3",
			},
			want: false,
		},
		{
			name: "non-numeric code",
			record: Record{
				Character:  "本",
				Code:       "10a2",
				Definition: "root",
				Pinyin:     "ben3",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Valid())
		})
	}
}

func TestDefaultColumnMap(t *testing.T) {
	cm := DefaultColumnMap(10)

	assert.Equal(t, 0, cm.Character)
	assert.Equal(t, 1, cm.Cantonese)
	assert.Equal(t, 2, cm.Definition)
	assert.Equal(t, 9, cm.Pinyin)
	assert.Equal(t, 10, cm.Code)
}
