package recordstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("429 in the text is not enough"), want: false},
		{name: "rate limited", err: &StatusError{StatusCode: 429}, want: true},
		{name: "server error", err: &StatusError{StatusCode: 500}, want: true},
		{name: "bad gateway wrapped", err: fmt.Errorf("read: %w", &StatusError{StatusCode: 502}), want: true},
		{name: "bad request", err: &StatusError{StatusCode: 400}, want: false},
		{name: "not found", err: &StatusError{StatusCode: 404}, want: false},
		{name: "throttling code", err: &smithy.GenericAPIError{Code: "ThrottlingException"}, want: true},
		{name: "throughput code", err: &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException"}, want: true},
		{name: "validation code", err: &smithy.GenericAPIError{Code: "ValidationException"}, want: false},
		{name: "table missing", err: ErrTableNotFound, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsTransient(tc.err))
		})
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	err := &StoreError{Op: "read", Table: "quotes", Err: ErrTableNotFound}
	require.ErrorIs(t, err, ErrTableNotFound)
	require.Contains(t, err.Error(), "read quotes")
}
