package firestore

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWithTimestamps(t *testing.T) {
	fields := map[string]any{"name": "Villa Dupont"}

	created := withTimestamps(fields, true)
	assert.Equal(t, "Villa Dupont", created["name"])
	assert.Equal(t, firestore.ServerTimestamp, created[createdAtField])
	assert.Equal(t, firestore.ServerTimestamp, created[updatedAtField])
	assert.NotContains(t, fields, createdAtField, "input map must not be mutated")

	updated := withTimestamps(fields, false)
	assert.NotContains(t, updated, createdAtField)
}

func TestReplacementKeepsCreatedAt(t *testing.T) {
	stored := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fields := map[string]any{"hourlyRate": "30", createdAtField: "client supplied"}

	data := replacement(fields, stored)
	assert.Equal(t, stored, data[createdAtField])
	assert.Equal(t, firestore.ServerTimestamp, data[updatedAtField])
	assert.Equal(t, "30", data["hourlyRate"])

	fresh := replacement(map[string]any{"hourlyRate": "30"}, nil)
	assert.Equal(t, firestore.ServerTimestamp, fresh[createdAtField])
}

func TestStripTimestamps(t *testing.T) {
	data := stripTimestamps(map[string]any{"name": "x", createdAtField: 1, updatedAtField: 2})
	assert.Equal(t, map[string]any{"name": "x"}, data)
}

func TestTranslateError(t *testing.T) {
	err := translateError(status.Error(codes.NotFound, "no such document"), "clients", "c1", "get")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = translateError(errors.New("boom"), "clients", "c1", "update")
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}
