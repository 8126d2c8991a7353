// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors/errors.go.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// TestNew
// ─────────────────────────────────────────────────────────────────────────────

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.ErrCodeInternal, "unexpected failure"},
		{"invalid text", errors.ErrCodeTextNotUTF8, "paragraph is not valid UTF-8"},
		{"bad span", errors.ErrCodeSpanInvalid, "span end precedes start"},
		{"bad note", errors.ErrCodeNoteMalformed, "missing root element"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestNewf_FormatsMessage(t *testing.T) {
	t.Parallel()

	ae := errors.Newf(errors.ErrCodeSpanInvalid, "span [%d, %d) out of range", 5, 3)
	require.NotNil(t, ae)
	assert.Equal(t, "span [5, 3) out of range", ae.Message)
}

// ─────────────────────────────────────────────────────────────────────────────
// TestWrap
// ─────────────────────────────────────────────────────────────────────────────

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()

	result := errors.Wrap(nil, errors.ErrCodeInternal, "should not matter")
	assert.Nil(t, result)
}

func TestWrap_CauseChainIsPreserved(t *testing.T) {
	t.Parallel()

	root := stderrors.New("read failed")
	wrapped := errors.Wrap(root, errors.ErrCodeNoteMalformed, "failed to parse note")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.ErrCodeNoteMalformed, wrapped.Code)
	assert.Equal(t, "failed to parse note", wrapped.Message)
	assert.Equal(t, root, wrapped.Cause)
	assert.Equal(t, root, stderrors.Unwrap(wrapped))
}

func TestWrap_PreservesOriginalCodeWhenCodeUnknown(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeTextNotUTF8, "bad text")
	outer := errors.Wrap(inner, errors.CodeUnknown, "adding context")

	require.NotNil(t, outer)
	assert.Equal(t, errors.ErrCodeTextNotUTF8, outer.Code)
}

func TestWrap_OverridesCodeWhenExplicit(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeTextNotUTF8, "bad text")
	outer := errors.Wrap(inner, errors.ErrCodeInternal, "unexpected state")

	assert.Equal(t, errors.ErrCodeInternal, outer.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Error formatting and detail
// ─────────────────────────────────────────────────────────────────────────────

func TestError_Format(t *testing.T) {
	t.Parallel()

	plain := errors.New(errors.ErrCodeSpanOverlap, "spans overlap")
	assert.Equal(t, "[TAG_003] spans overlap", plain.Error())

	detailed := plain.WithDetail("span [3, 9) overlaps [5, 12)")
	assert.Equal(t, "[TAG_003] spans overlap: span [3, 9) overlaps [5, 12)", detailed.Error())
}

func TestWithDetail_ReturnsClone(t *testing.T) {
	t.Parallel()

	base := errors.New(errors.ErrCodeConceptListInvalid, "bad list")
	detailed := base.WithDetail("empty phrase at index 2")

	assert.Empty(t, base.Detail)
	assert.Equal(t, "empty phrase at index 2", detailed.Detail)

	var nilErr *errors.AppError
	assert.Nil(t, nilErr.WithDetail("ignored"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestIsCode(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeRecognizerFailed, "recognizer call failed")
	outer := fmt.Errorf("extraction: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrCodeRecognizerFailed))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeTextNotUTF8))
	assert.False(t, errors.IsCode(nil, errors.ErrCodeInternal))
	assert.False(t, errors.IsCode(stderrors.New("plain"), errors.ErrCodeInternal))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeUnavailable, "down")
	assert.Equal(t, errors.ErrCodeUnavailable, errors.GetCode(ae))
	assert.Equal(t, errors.ErrCodeUnavailable, errors.GetCode(fmt.Errorf("wrapped: %w", ae)))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(nil))
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.ErrCodeInvalidInput, errors.InvalidInput("bad").Code)
	assert.Equal(t, errors.ErrCodeInternal, errors.Internal("boom").Code)
	assert.Equal(t, errors.ErrCodeUnavailable, errors.Unavailable("down").Code)
}

func TestAsAndIsReExports(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeInternal, "boom")
	wrapped := fmt.Errorf("outer: %w", ae)

	var target *errors.AppError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, errors.ErrCodeInternal, target.Code)
	assert.True(t, errors.Is(wrapped, ae))
}
