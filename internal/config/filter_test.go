package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterGroups(t *testing.T) {
	groups := []string{"home", "work.aws", "work.aws.prod", "work.gcp"}

	tests := []struct {
		filter string
		want   []string
	}{
		{"", groups},
		{"aws", []string{"work.aws", "work.aws.prod"}},
		{"work.*", []string{"work.aws", "work.gcp"}},
		{"work.**", []string{"work.aws", "work.aws.prod", "work.gcp"}},
		{"*.{aws,gcp}", []string{"work.aws", "work.gcp"}},
		{"nomatch", nil},
	}
	for _, tt := range tests {
		got, err := FilterGroups(groups, tt.filter)
		require.NoError(t, err, tt.filter)
		assert.Equal(t, tt.want, got, tt.filter)
	}
}

func TestFilterGroups_BadPattern(t *testing.T) {
	_, err := FilterGroups([]string{"a"}, "[")
	assert.Error(t, err)
}
