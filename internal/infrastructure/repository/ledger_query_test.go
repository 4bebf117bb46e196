package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapSnapshotError(t *testing.T) {
	err := mapSnapshotError(fmt.Errorf("begin tx: %w", gorm.ErrInvalidTransaction))
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Contains(t, appErr.Message, "consistency")
}

func TestMapSnapshotErrorPassthrough(t *testing.T) {
	cause := errors.New("connection reset by peer")
	assert.Equal(t, cause, mapSnapshotError(cause))
	assert.NoError(t, mapSnapshotError(nil))
}
