package check_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/optimode/emailverify/check"
	"github.com/optimode/emailverify/check/mocks"
	"github.com/optimode/emailverify/internal/reputation"
	"github.com/optimode/emailverify/types"
)

func boolPtr(b bool) *bool { return &b }

func TestBurnerChecker(t *testing.T) {
	boom := errors.New("service unavailable")
	tests := []struct {
		name    string
		verdict *reputation.Verdict
		lookErr error
		wantOK  bool
		wantErr error
	}{
		{"not disposable", &reputation.Verdict{Disposable: boolPtr(false)}, nil, true, nil},
		{"disposable", &reputation.Verdict{Disposable: boolPtr(true)}, nil, false, nil},
		{"missing flag", &reputation.Verdict{}, nil, false, check.ErrNoVerdict},
		{"nil verdict", nil, nil, false, check.ErrNoVerdict},
		{"lookup error", nil, boom, false, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockReputationSource(ctrl)
			source.EXPECT().Lookup(gomock.Any(), "mailinator.com").Return(tt.verdict, tt.lookErr)

			c := check.NewBurnerChecker(source)
			result, err := c.Check(context.Background(), candidate(t, "user@mailinator.com"))
			assert.Equal(t, types.LevelBurner, result.Level)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, result.Passed)
		})
	}
}
