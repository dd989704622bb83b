package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationKey_OrderIndependent(t *testing.T) {
	tests := []struct {
		name string
		a    int64
		b    int64
		want string
	}{
		{"ascending pair", 3, 7, "3_7"},
		{"descending pair", 7, 3, "3_7"},
		{"same id twice", 5, 5, "5_5"},
		{"large ids", 1002, 41, "41_1002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConversationKey(tt.a, tt.b))
		})
	}
}

func TestConversationKey_SymmetricForAllPairs(t *testing.T) {
	ids := []int64{1, 2, 10, 42, 1000}
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, ConversationKey(a, b), ConversationKey(b, a),
				"key must not depend on direction for pair (%d,%d)", a, b)
		}
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleEntrepreneur.IsValid())
	assert.True(t, RoleInvestor.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("merchant").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestProjectStatus_IsValid(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectStatusDraft, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ProjectStatus("archived").IsValid())
}

func TestInteractionType_IsValid(t *testing.T) {
	assert.True(t, InteractionTypeView.IsValid())
	assert.True(t, InteractionTypeLike.IsValid())
	assert.False(t, InteractionType("share").IsValid())
}
