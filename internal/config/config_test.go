package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRemote_Defaults(t *testing.T) {
	viper.Reset()
	SetRemoteDefaults()

	r, err := LoadRemote()

	require.NoError(t, err)
	assert.Equal(t, defaultAPIBaseURL, r.BaseURL)
	assert.Equal(t, 30*time.Second, r.RequestTimeout)
	assert.Equal(t, 6, r.PageSize)
	assert.Equal(t, BatchConcurrent, r.SlideBatch)
	assert.Equal(t, BatchSequential, r.EventBatch)
	assert.NotNil(t, r.Location)
}

func TestLoadRemote_TrimsBaseURL(t *testing.T) {
	viper.Reset()
	SetRemoteDefaults()
	viper.Set("API_BASE_URL", "http://example.test/")
	viper.Set("TIMEZONE", "UTC")

	r, err := LoadRemote()

	require.NoError(t, err)
	assert.Equal(t, "http://example.test", r.BaseURL)
	assert.Equal(t, time.UTC, r.Location)
}

func TestRemote_Validate(t *testing.T) {
	valid := Remote{
		BaseURL:     "http://x",
		PageSize:    6,
		Concurrency: 1,
		SlideBatch:  BatchConcurrent,
		EventBatch:  BatchSequential,
	}

	tests := []struct {
		name    string
		mutate  func(r *Remote)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Remote) {}},
		{name: "empty base url", mutate: func(r *Remote) { r.BaseURL = "" }, wantErr: true},
		{name: "zero page size", mutate: func(r *Remote) { r.PageSize = 0 }, wantErr: true},
		{name: "zero concurrency", mutate: func(r *Remote) { r.Concurrency = 0 }, wantErr: true},
		{name: "unknown policy", mutate: func(r *Remote) { r.EventBatch = "parallel" }, wantErr: true},
		{name: "negative timeout", mutate: func(r *Remote) { r.RequestTimeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
