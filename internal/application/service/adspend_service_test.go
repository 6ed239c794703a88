package service

import (
	"context"
	"testing"

	"github.com/bizpulse/bizpulse-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAdSpend(t *testing.T) {
	repo := &fakeAdSpendRepo{}
	svc := NewAdSpendService(repo)

	spend, err := svc.RecordAdSpend(context.Background(), &RecordAdSpendInput{
		Platform: "Instagram",
		Amount:   50.0,
		Date:     "2026-08-25",
		Reach:    5000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), spend.Amount)
	assert.Equal(t, "2026-08-25", spend.DateString())
	assert.Equal(t, 5000, spend.Reach)

	recorded, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
}

func TestRecordAdSpendValidation(t *testing.T) {
	svc := NewAdSpendService(&fakeAdSpendRepo{})

	cases := []struct {
		name  string
		input RecordAdSpendInput
	}{
		{"EmptyPlatform", RecordAdSpendInput{Platform: "  ", Amount: 10}},
		{"NegativeAmount", RecordAdSpendInput{Platform: "Google", Amount: -1}},
		{"NegativeReach", RecordAdSpendInput{Platform: "Google", Amount: 10, Reach: -1}},
		{"MalformedDate", RecordAdSpendInput{Platform: "Google", Amount: 10, Date: "not-a-date"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordAdSpend(context.Background(), &tc.input)
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}
