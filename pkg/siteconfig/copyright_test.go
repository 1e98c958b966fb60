package siteconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyrightYear(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		config string
		want   string
	}{
		{name: "no start", config: `{}`, want: "2025"},
		{name: "start year", config: `{"start-year": 2020}`, want: "2020-2025"},
		{name: "start year as string", config: `{"start-year": "2021"}`, want: "2021-2025"},
		{name: "start year is this year", config: `{"start-year": 2025}`, want: "2025"},
		{name: "start year in the future", config: `{"start-year": 2030}`, want: "2025"},
		{name: "unparseable start year", config: `{"start-year": "soon"}`, want: "2025"},
		{name: "start date with dashes", config: `{"start-date": "2019-03-04"}`, want: "2019-2025"},
		{name: "start date with slashes", config: `{"start-date": "2018/12/31"}`, want: "2018-2025"},
		{name: "start date with dots", config: `{"start-date": "2017.01.02"}`, want: "2017-2025"},
		{name: "unpadded start date with dashes", config: `{"start-date": "2021-1-5"}`, want: "2021-2025"},
		{name: "unpadded start date with slashes", config: `{"start-date": "2021/3/9"}`, want: "2021-2025"},
		{name: "unpadded start date with dots", config: `{"start-date": "2021.7.1"}`, want: "2021-2025"},
		{name: "mixed padding", config: `{"start-date": "2020-01-5"}`, want: "2020-2025"},
		{name: "start date wins over start year", config: `{"start-date": "2016-01-01", "start-year": 2020}`, want: "2016-2025"},
		{name: "bad start date falls back to start year", config: `{"start-date": "yesterday-ish", "start-year": 2022}`, want: "2022-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Parse([]byte(tt.config))
			require.NoError(t, err)

			assert.Equal(t, tt.want, CopyrightYear(config, now))
		})
	}
}
