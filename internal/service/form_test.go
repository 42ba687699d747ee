package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/model"
)

const testSecret = "test-secret"

func newTestFormService() *FormService {
	return NewFormService(crypto.NewSeededSource(11), testSecret, time.Hour)
}

func decode(t *testing.T, resp model.FormResponse) model.FormState {
	t.Helper()
	state, err := crypto.ValidateFormToken(resp.Token, testSecret)
	require.NoError(t, err)
	return state
}

func TestFormService_FullCycle(t *testing.T) {
	svc := newTestFormService()

	resp, err := svc.Open()
	require.NoError(t, err)
	assert.Equal(t, "input", resp.View)
	assert.Equal(t, model.FormState{}, decode(t, resp))

	resp, err = svc.SetLength(decode(t, resp), "8")
	require.NoError(t, err)
	resp, err = svc.Toggle(decode(t, resp), "upper")
	require.NoError(t, err)
	resp, err = svc.Toggle(decode(t, resp), "digits")
	require.NoError(t, err)

	resp, err = svc.Submit(decode(t, resp))
	require.NoError(t, err)
	assert.Equal(t, "result", resp.View)
	assert.Len(t, resp.Form.Password, 8)
	assert.True(t, resp.Form.Generated)
	assert.Equal(t, resp.Form, decode(t, resp))

	resp, err = svc.Reset(decode(t, resp))
	require.NoError(t, err)
	assert.Equal(t, "input", resp.View)
	assert.Equal(t, model.FormState{}, resp.Form)
}

func TestFormService_SubmitEmptyPool(t *testing.T) {
	svc := newTestFormService()

	resp, err := svc.Submit(model.FormState{Length: "8"})

	assert.ErrorIs(t, err, crypto.ErrEmptyPool)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "input", resp.View)
	assert.Empty(t, resp.Form.Password)
	assert.Equal(t, crypto.ErrEmptyPool.Error(), decode(t, resp).Error)
}

func TestFormService_SubmitInvalidLength(t *testing.T) {
	svc := newTestFormService()

	resp, err := svc.Submit(model.FormState{Length: "3", Uppercase: true})

	require.Error(t, err)
	assert.Equal(t, "Should be at least 4 characters", err.Error())
	assert.False(t, resp.Form.Generated)
}

func TestFormService_ToggleUnknownClass(t *testing.T) {
	svc := newTestFormService()

	_, err := svc.Toggle(model.FormState{}, "emoji")

	assert.ErrorIs(t, err, crypto.ErrUnknownClass)
}

func TestFormService_Show(t *testing.T) {
	svc := newTestFormService()
	state := model.FormState{Length: "12", Symbols: true}

	resp, err := svc.Show(state)

	require.NoError(t, err)
	assert.Equal(t, state, resp.Form)
	assert.Equal(t, state, decode(t, resp))
}
