package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"stage": "dashboard",
	}

	before := time.Now()
	evt := NewEvent(EventTypeBudgetFinalized, EntityTypeSession, payload)
	after := time.Now()

	assert.Equal(t, "session.budget_finalized", evt.Type)
	assert.Equal(t, EntityTypeSession, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_ToJSON(t *testing.T) {
	evt := IncomeFinalized(map[string]interface{}{"totalIncome": "3000.00"})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "session.income_finalized", decoded["type"])
	assert.Equal(t, "session", decoded["entity"])
	assert.NotNil(t, decoded["timestamp"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "3000.00", payload["totalIncome"])
}

func TestSessionEvent_Helpers(t *testing.T) {
	tests := []struct {
		name     string
		build    func(interface{}) Event
		expected string
	}{
		{"IncomeFinalized", IncomeFinalized, "session.income_finalized"},
		{"BudgetFinalized", BudgetFinalized, "session.budget_finalized"},
		{"SessionBack", SessionBack, "session.back"},
		{"SessionEdit", SessionEdit, "session.edit"},
		{"SessionReset", SessionReset, "session.reset"},
		{"DraftUpdated", DraftUpdated, "session.draft_updated"},
		{"SessionSnapshot", SessionSnapshot, "session.snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := tt.build("payload")
			assert.Equal(t, tt.expected, evt.Type)
			assert.Equal(t, EntityTypeSession, evt.Entity)
			assert.Equal(t, "payload", evt.Payload)
		})
	}
}
