// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/logging"
)

/*
TestNew_ProductionJSON emits one JSON object per record with the app attribute.
*/
func TestNew_ProductionJSON(t *testing.T) {
	var buffer bytes.Buffer
	logger := logging.New(logging.Options{Output: &buffer})

	logger.Info("portfolio_created")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &record))
	assert.Equal(t, "portfolio_created", record["msg"])
	assert.Equal(t, constants.AppName, record["app"])
}

/*
TestNew_DebugLevel filters debug records unless Debug is set.
*/
func TestNew_DebugLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer

	logging.New(logging.Options{Output: &quiet}).Debug("hidden")
	logging.New(logging.Options{Output: &verbose, Debug: true}).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}

/*
TestNew_Development uses the console handler.
*/
func TestNew_Development(t *testing.T) {
	var buffer bytes.Buffer
	logging.New(logging.Options{Output: &buffer, Development: true}).Info("server_starting")

	assert.Contains(t, buffer.String(), "server_starting")
	assert.False(t, json.Valid(bytes.TrimSpace(buffer.Bytes())))
}
